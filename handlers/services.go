package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListServicesHandler returns the bookable service catalog.
func ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, store.activeServices())
}
