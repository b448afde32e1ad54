package echo

import (
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barisgit/compgen/internal/static"
)

// StaticHandler creates an Echo handler using the shared static logic
func StaticHandler(assets fs.FS, config static.StaticConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		response := static.ServeStaticFile(assets, config, c.Request().URL.Path)

		if response.NotFound {
			return c.NoContent(http.StatusNotFound)
		}

		c.Response().Header().Set("Cache-Control", response.CacheControl)
		return c.Blob(response.StatusCode, response.ContentType, response.Body)
	}
}
