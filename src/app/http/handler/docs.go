package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	//go:embed openapi/openapi.json
	openAPIDocument []byte

	//go:embed openapi/docs.html
	docsPage []byte
)

// DocsHandler serves the OpenAPI document and an HTML viewer for it.
type DocsHandler struct{}

// NewDocsHandler creates a new DocsHandler.
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

// OpenAPI returns the OpenAPI document.
// GET /openapi.json
func (h *DocsHandler) OpenAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", openAPIDocument)
}

// Docs returns the Swagger UI page that renders /openapi.json.
// GET /docs
func (h *DocsHandler) Docs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", docsPage)
}
