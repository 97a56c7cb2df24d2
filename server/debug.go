package server

import (
	"net/http/pprof"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
)

// mountDebug exposes the standard pprof handlers. Only wired when Debug
// is on; the public deployment never serves these.
func (s *Server) mountDebug(app *fiber.App) {
	app.Get("/debug/pprof/cmdline", adaptor.HTTPHandlerFunc(pprof.Cmdline))
	app.Get("/debug/pprof/profile", adaptor.HTTPHandlerFunc(pprof.Profile))
	app.Get("/debug/pprof/symbol", adaptor.HTTPHandlerFunc(pprof.Symbol))
	app.Get("/debug/pprof/trace", adaptor.HTTPHandlerFunc(pprof.Trace))
	// Index also serves the named profiles (heap, goroutine, ...).
	app.Get("/debug/pprof/:profile?", adaptor.HTTPHandlerFunc(pprof.Index))
}
