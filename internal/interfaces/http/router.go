package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invorya-movil/internal/application/auth"
	"github.com/jhoicas/invorya-movil/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas del backend de desarrollo: exactamente la
// superficie que consume el cliente móvil, más el registro de usuarios.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Registro de usuarios: protegido y restringido a admin
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RolAdmin),
		authHandler.Register,
	)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	users := protected.Group("/users")
	users.Get("/profile", authHandler.Profile)
	users.Put("/profile", authHandler.UpdateProfile)
}
