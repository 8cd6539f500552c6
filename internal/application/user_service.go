package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/writing-practice-api/internal/domain/entity"
	repo "github.com/oksasatya/writing-practice-api/internal/domain/repository"
	"github.com/oksasatya/writing-practice-api/pkg/helpers"
)

var (
	ErrUsernameTaken = errors.New("username taken")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

type UserService struct {
	Repo   repo.UserRepository
	Hasher helpers.PasswordHasher
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, hasher helpers.PasswordHasher, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Hasher: hasher, Logger: logger}
}

// RegisterInput carries the client-supplied profile. A zero BirthDate means "not given".
type RegisterInput struct {
	Username    string
	Password    string
	Name        string
	Email       string
	BirthDate   time.Time
	PhoneNumber string
	Gender      string
}

// Register creates a user with a hashed password.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	existing, err := s.Repo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, errors.Wrap(err, "find user by username")
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	u, err := s.Repo.Create(ctx, &entity.User{
		Username:    in.Username,
		Password:    hash,
		Name:        in.Name,
		Email:       in.Email,
		BirthDate:   in.BirthDate,
		PhoneNumber: in.PhoneNumber,
		Gender:      in.Gender,
	})
	if err != nil {
		// lost the race against a concurrent register of the same name
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, errors.Wrap(err, "create user")
	}

	helpers.LogInfo(s.Logger, "user registered", logrus.Fields{"user_id": u.ID})
	return u, nil
}

// Login verifies the credentials and returns the stored user. No session is issued.
func (s *UserService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.Wrap(err, "find user by username")
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	ok, err := s.Hasher.Verify(password, u.Password)
	if err != nil {
		return nil, errors.Wrap(err, "verify password")
	}
	if !ok {
		return nil, ErrWrongPassword
	}
	return u, nil
}
