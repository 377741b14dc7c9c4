package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medorahq/medora_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, ah *handler.AuthHandler, authRequired fiber.Handler) {
	auth := api.Group("/auth")

	auth.Post("/register", ah.Register)
	auth.Post("/login", ah.Login)
	auth.Post("/refresh", ah.Refresh)

	auth.Post("/logout", authRequired, ah.Logout)
	auth.Post("/logout-all", authRequired, ah.LogoutAll)
	auth.Post("/change-password", authRequired, ah.ChangePassword)
}
