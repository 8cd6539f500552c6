package container

import (
	"github.com/sirupsen/logrus"

	pginfra "github.com/oksasatya/writing-practice-api/internal/infrastructure/postgres"
	"github.com/oksasatya/writing-practice-api/pkg/helpers"
)

// app-level container shared by the router when it wires modules

var (
	logger *logrus.Logger
	db     pginfra.Querier
	hasher helpers.PasswordHasher
)

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger {
	if logger != nil {
		return logger
	}
	return helpers.NewDiscardLogger()
}
func SetDB(q pginfra.Querier) { db = q }
func GetDB() pginfra.Querier  { return db }

func SetHasher(h helpers.PasswordHasher) { hasher = h }
func GetHasher() helpers.PasswordHasher {
	if hasher != nil {
		return hasher
	}
	return helpers.NewBcryptHasher()
}
