package handler

import (
	"github.com/gin-gonic/gin"

	"clans/src/app/http/dto"
	"clans/src/app/http/response"
	"clans/src/app/middleware"
	"clans/src/core/usecase"
)

// ClanHandler handles the /clans endpoints.
type ClanHandler struct {
	clanService *usecase.ClanService
}

// NewClanHandler creates a new ClanHandler.
func NewClanHandler(clanService *usecase.ClanService) *ClanHandler {
	useJSONFieldNames()
	return &ClanHandler{clanService: clanService}
}

// Create handles POST /clans.
func (h *ClanHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.CreateClanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		field, message := describeBindError(err)
		response.ValidationError(c, field, message, requestID)
		return
	}

	clan, err := h.clanService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}

	response.Created(c, dto.ClanMessageResponse{
		ID:      clan.ID.String(),
		Message: dto.MessageClanCreated,
	})
}

// List handles GET /clans.
func (h *ClanHandler) List(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var q dto.ListClansQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, "", "limit and offset must be integers", requestID)
		return
	}

	clans, err := h.clanService.List(c.Request.Context(), q.ToInput())
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}

	response.OK(c, dto.ClansFromDomain(clans))
}

// Get handles GET /clans/:clan_id.
func (h *ClanHandler) Get(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	clan, err := h.clanService.Get(c.Request.Context(), c.Param("clan_id"))
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}

	response.OK(c, dto.ClanFromDomain(clan))
}

// Delete handles DELETE /clans/:clan_id.
func (h *ClanHandler) Delete(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := h.clanService.Delete(c.Request.Context(), c.Param("clan_id"))
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}

	response.OK(c, dto.ClanMessageResponse{
		ID:      id.String(),
		Message: dto.MessageClanDeleted,
	})
}
