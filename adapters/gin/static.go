package gin

import (
	"io/fs"

	"github.com/gin-gonic/gin"

	"github.com/barisgit/compgen/internal/static"
)

// StaticHandler creates a Gin handler using the shared static logic
func StaticHandler(assets fs.FS, config static.StaticConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := static.ServeStaticFile(assets, config, c.Request.URL.Path)

		if response.NotFound {
			c.AbortWithStatus(404)
			return
		}

		c.Header("Cache-Control", response.CacheControl)
		c.Data(response.StatusCode, response.ContentType, response.Body)
	}
}
