package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/invorya-movil/internal/domain"
	"github.com/jhoicas/invorya-movil/internal/domain/entity"
	"github.com/jhoicas/invorya-movil/internal/infrastructure/postgres"
	"github.com/jhoicas/invorya-movil/pkg/config"
	"github.com/jhoicas/invorya-movil/pkg/logger"
)

// Crea el usuario admin inicial del backend de desarrollo.
// Uso: go run ./cmd/seed -email admin@invorya.local -password <pass>
func main() {
	email := flag.String("email", "admin@invorya.local", "email del admin inicial")
	password := flag.String("password", "", "password del admin inicial (mínimo 8 caracteres)")
	name := flag.String("name", "Administrador", "nombre visible")
	flag.Parse()

	log := logger.New(logger.Config{Env: "development", Level: "info"})

	if len(*password) < 8 {
		log.Fatal().Msg("se requiere -password de al menos 8 caracteres")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar configuración")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        *email,
		PasswordHash: string(hash),
		Name:         *name,
		Role:         entity.RolAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	repo := postgres.NewUserRepository(pool)
	if err := repo.Create(user); err != nil {
		if err == domain.ErrEmailExists {
			log.Info().Str("email", *email).Msg("el admin ya existe, nada que hacer")
			return
		}
		log.Fatal().Err(err).Msg("crear admin")
	}

	log.Info().Str("email", *email).Str("id", user.ID).Msg("admin inicial creado")
}
