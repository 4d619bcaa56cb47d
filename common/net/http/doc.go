package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// DocAPI adds the documentation route to the API, serving ./api/openapi.yml.
// Ex: /{serviceName}/docs
// And adds the swagger UI route too, pointed at that document.
// Ex: /v1/swagger/*
func DocAPI(serviceName, title string, app *fiber.App) {
	docURL := fmt.Sprintf("/%s/docs", serviceName)

	app.Get(docURL, func(c *fiber.Ctx) error {
		return c.SendFile("./api/openapi.yml")
	})

	app.Get("/v1/swagger/*", swagger.New(swagger.Config{
		URL:   docURL,
		Title: title,
	}))
}
