package handlers

import (
	"strings"

	"openaria_tracking/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// requestMeta reads the visitor's address from proxy headers: the first
// X-Forwarded-For entry, then X-Real-IP.
func requestMeta(c *gin.Context) entities.RequestMeta {
	meta := entities.RequestMeta{UserAgent: c.Request.UserAgent()}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		meta.ClientIP = strings.TrimSpace(first)
	}
	if meta.ClientIP == "" {
		meta.ClientIP = strings.TrimSpace(c.GetHeader("X-Real-IP"))
	}
	return meta
}
