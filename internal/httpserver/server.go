package httpserver

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
	"github.com/nguyentantai21042004/lecture-notes/internal/pipeline"
)

// Server exposes the notes pipeline over HTTP.
type Server struct {
	app      *fiber.App
	pipeline pipeline.Pipeline
	logger   logger.Logger
	validate *validator.Validate
}

// New builds the Fiber app and registers routes.
func New(p pipeline.Pipeline, log logger.Logger) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "lecture-notes",
			DisableStartupMessage: true,
			// transcripts of a long lecture easily exceed the 4MB default
			BodyLimit: 16 * 1024 * 1024,
		}),
		pipeline: p,
		logger:   log,
		validate: newValidator(),
	}

	s.app.Use(recover.New())
	// The browser extension front end calls from its own origin.
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	s.app.Use(requestLogger(log))

	s.app.Get("/health", s.health)
	s.app.Post("/generate_notes", s.generateNotes)

	return s
}

// App returns the underlying Fiber app, mostly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving on addr until Shutdown is called.
func (s *Server) Listen(ctx context.Context, addr string) error {
	s.logger.Info(ctx, "HTTP server listening on %s", addr)
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting for in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
