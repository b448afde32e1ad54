package fiber

import (
	"io/fs"

	"github.com/gofiber/fiber/v2"

	"github.com/barisgit/compgen/internal/static"
)

// StaticHandler creates a Fiber handler using the shared static logic
func StaticHandler(assets fs.FS, config static.StaticConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		response := static.ServeStaticFile(assets, config, c.Path())

		if response.NotFound {
			return c.SendStatus(fiber.StatusNotFound)
		}

		c.Set(fiber.HeaderContentType, response.ContentType)
		c.Set(fiber.HeaderCacheControl, response.CacheControl)
		c.Status(response.StatusCode)
		return c.Send(response.Body)
	}
}
