package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// The API is consumed from arbitrary portfolio-site origins, so the CORS
// surface is fixed and applied to every response, errors included.
const (
	corsAllowMethods = "GET,OPTIONS,PATCH,DELETE,POST,PUT"
	corsAllowHeaders = "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, " +
		"Content-Length, Content-MD5, Content-Type, Date, X-Api-Version"
)

// cors sets the CORS headers and short-circuits OPTIONS preflights with
// an empty 200.
func cors() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Credentials", "true")
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", corsAllowMethods)
		c.Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if c.Method() == fiber.MethodOptions {
			return c.Status(fiber.StatusOK).Send(nil)
		}
		return c.Next()
	}
}

const requestIDHeader = "X-Request-Id"

// localRequestID is the fiber.Ctx locals key for the request id.
const localRequestID = "request_id"

// requestID assigns each request an id, honoring one supplied by the
// caller, and echoes it back in the response.
func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(localRequestID, id)
		c.Set(requestIDHeader, id)
		return c.Next()
	}
}

// reqID fetches the request id set by the middleware.
func reqID(c *fiber.Ctx) string {
	id, _ := c.Locals(localRequestID).(string)
	return id
}
