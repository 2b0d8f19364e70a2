package delivery

import (
	"errors"
	"net/http"

	"inventory_app/internal/domain"

	"github.com/gin-gonic/gin"
)

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func renderError(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": err.Error(),
	})
}
