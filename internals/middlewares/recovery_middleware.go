package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic handler dan mengubahnya jadi 500.
// Request id ikut dicatat supaya panic bisa dikorelasikan dengan log [REQ].
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			reqid, _ := c.Locals("reqid").(string)
			log.Printf("❌ [PANIC] id=%s %s %s: %v\n%s",
				reqid, c.Method(), c.OriginalURL(), e, debug.Stack())
		},
	})
}
