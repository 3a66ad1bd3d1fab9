package server

import (
	"errors"

	"notely/internal/database"
	"notely/internal/database/dto"
	"notely/internal/database/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
)

type FiberServer struct {
	*fiber.App

	db    database.Service
	notes repositories.NoteRepository
}

func New(db database.Service, notes repositories.NoteRepository) *FiberServer {
	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader: "notely",
			AppName:      "notely",
			ErrorHandler: errorHandler,
		}),
		db:    db,
		notes: notes,
	}
	server.App.Use(favicon.New())
	// The front end is served from a different origin, so every response
	// must carry permissive CORS headers.
	server.App.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Requested-With",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		MaxAge:       3600,
	}))
	server.App.Use(logger.New())
	server.App.Use(pprof.New(pprof.Config{
		Next: nil, // Use this if you want to exclude specific routes
	}))
	return server
}

// errorHandler shapes any error a handler lets escape into the JSON
// error envelope. Store faults end up here instead of being swallowed.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}
	return c.Status(code).JSON(dto.ErrorResponse{Error: message})
}
