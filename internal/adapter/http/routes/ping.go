package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", ping)
}

// ping godoc
// @Summary  Liveness check
// @Tags     health
// @Produce  json
// @Success  200  {string}  string  "pong"
// @Router   /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, "pong")
}
