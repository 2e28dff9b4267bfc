package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"planline.app/api-server/internal/service"
)

// respondError maps service failures onto the wire. Rejections carry their
// kind and message; anything else is an internal error and its detail stays
// in the logs.
func respondError(c *gin.Context, err error) {
	if rej, ok := service.AsRejection(err); ok {
		c.JSON(statusForRejection(rej.Kind), gin.H{
			"kind":  string(rej.Kind),
			"error": rej.Message,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"error", err,
			"path", c.FullPath(),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func statusForRejection(kind service.RejectionKind) int {
	switch kind {
	case service.KindUnauthenticated:
		return http.StatusUnauthorized
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
