package server

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one access line per request: the city asked for, the status
// and, for failures, the error category.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		line := "api " + c.Request.Method + " " + c.Request.URL.RequestURI()
		if city := c.Param("city"); city != "" {
			line += " city=" + city
		}
		if category := c.GetString(categoryKey); category != "" {
			log.Printf("%s status=%d error=%s took=%v: %s", line, c.Writer.Status(), category, time.Since(start), c.Errors.Last())
			return
		}
		log.Printf("%s status=%d took=%v", line, c.Writer.Status(), time.Since(start))
	}
}
