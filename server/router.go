package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	bikeshare "github.com/theoremus-urban-solutions/bikeshare-explorer"
)

// SetupRouter wires the API routes over analyzer.
func SetupRouter(analyzer *bikeshare.Analyzer) *gin.Engine {
	r := gin.New()
	r.Use(Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "bikeshare explorer API is running",
		})
	})

	h := NewStatsHandler(analyzer)
	api := r.Group("/api/v1")
	{
		api.GET("/cities", h.GetCities)
		cities := api.Group("/cities/:city")
		{
			cities.GET("/stats", h.GetStats)
			cities.GET("/raw", h.GetRaw)
		}
	}
	return r
}
