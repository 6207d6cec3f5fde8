package routes

import (
	"careerhub/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

// RegisterV1 wires the v1 API tree onto the given router group.
func RegisterV1(r fiber.Router, deps v1.Deps) {
	v1.Register(r, deps)
}
