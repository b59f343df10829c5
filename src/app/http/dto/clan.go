package dto

import (
	"time"

	"clans/src/core/domain"
	"clans/src/core/usecase"
)

// CreateClanRequest is the payload for POST /clans.
type CreateClanRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=255"`
	Region string `json:"region" binding:"required,min=1,max=16"`
}

func (r *CreateClanRequest) ToInput() usecase.CreateClanInput {
	return usecase.CreateClanInput{
		Name:   r.Name,
		Region: r.Region,
	}
}

// ListClansQuery holds the GET /clans query parameters.
type ListClansQuery struct {
	Region string  `form:"region"`
	SortBy *string `form:"sort_by"`
	Order  *string `form:"order"`
	Limit  *int    `form:"limit"`
	Offset *int    `form:"offset"`
}

func (q *ListClansQuery) ToInput() usecase.ListClansInput {
	return usecase.ListClansInput{
		Region: q.Region,
		SortBy: q.SortBy,
		Order:  q.Order,
		Limit:  q.Limit,
		Offset: q.Offset,
	}
}

// ClanResponse is the JSON shape of a clan.
type ClanResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Region    string     `json:"region"`
	CreatedAt *time.Time `json:"created_at"`
}

func ClanFromDomain(c *domain.Clan) ClanResponse {
	return ClanResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Region:    c.Region,
		CreatedAt: c.CreatedAt,
	}
}

// ClansFromDomain always returns a non-nil slice so empty lists encode as [].
func ClansFromDomain(clans []domain.Clan) []ClanResponse {
	out := make([]ClanResponse, 0, len(clans))
	for i := range clans {
		out = append(out, ClanFromDomain(&clans[i]))
	}
	return out
}

// ClanMessageResponse acknowledges a create or delete.
type ClanMessageResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

const (
	MessageClanCreated = "Clan created successfully."
	MessageClanDeleted = "Clan deleted successfully."
)
