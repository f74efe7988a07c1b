package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/railboard/pkg/api/routes"
)

const defaultBoard = "/core/departures/wat"

func NewApp() *fiber.App {
	webApp := fiber.New(fiber.Config{
		AppName:               "railboard",
		DisableStartupMessage: true,
	})
	webApp.Use(NewRequestID())
	webApp.Use(NewLogger())

	webApp.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(defaultBoard)
	})

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.BoardsRouter(group)

	return webApp
}

func SetupServer(listen string) error {
	return NewApp().Listen(listen)
}
