package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/writing-practice-api/config"
	"github.com/oksasatya/writing-practice-api/internal/domain/entity"
	pginfra "github.com/oksasatya/writing-practice-api/internal/infrastructure/postgres"
	"github.com/oksasatya/writing-practice-api/pkg/helpers"
)

const (
	demoUsername = "demo"
	demoPassword = "password123"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to postgres")
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	users := pginfra.NewUserRepository(pool)
	paragraphs := pginfra.NewParagraphRepository(pool)

	u, err := users.FindByUsername(ctx, demoUsername)
	if err != nil {
		logger.WithError(err).Fatal("failed to look up demo user")
	}
	if u != nil {
		logger.WithField("user_id", u.ID).Info("demo user already exists, skipping")
		return
	}

	hash, err := helpers.NewBcryptHasher().Hash(demoPassword)
	if err != nil {
		logger.WithError(err).Fatal("failed to hash password")
	}
	u, err = users.Create(ctx, &entity.User{
		Username: demoUsername,
		Password: hash,
		Name:     "Demo User",
		Email:    "demo@example.com",
		Gender:   "other",
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to seed user")
	}
	logger.WithFields(logrus.Fields{"user_id": u.ID, "username": demoUsername, "password": demoPassword}).Info("seeded user")

	good, fair := 9.0, 6.5
	samples := []entity.Paragraph{
		{
			Content: "Yesterday I went to the market and bought some fresh vegetables.",
			Point:   &good,
			Suggest: "Looks good.",
		},
		{
			Content:  "She don't like to reading books in the evening.",
			Point:    &fair,
			Mistakes: []string{"don't -> doesn't", "to reading -> reading"},
			Suggest:  "She doesn't like reading books in the evening.",
		},
	}
	for i := range samples {
		samples[i].UserID = u.ID
		p, err := paragraphs.Create(ctx, &samples[i])
		if err != nil {
			logger.WithError(err).Fatal("failed to seed paragraph")
		}
		logger.WithField("paragraph_id", p.ID).Info("seeded paragraph")
	}
}
