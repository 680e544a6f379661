package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/httperr"
)

func badRequest(c *gin.Context, err error) {
	httperr.BadRequest(c, "invalid_request", err.Error())
}
