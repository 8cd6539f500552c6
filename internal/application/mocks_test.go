package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/writing-practice-api/internal/domain/entity"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	args := m.Called(ctx, u)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if v := args.Get(0); v != nil {
		return v.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockParagraphRepo struct{ mock.Mock }

func (m *mockParagraphRepo) Create(ctx context.Context, p *entity.Paragraph) (*entity.Paragraph, error) {
	args := m.Called(ctx, p)
	if v := args.Get(0); v != nil {
		return v.(*entity.Paragraph), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockParagraphRepo) FindByUserID(ctx context.Context, userID string) ([]entity.Paragraph, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]entity.Paragraph), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockParagraphRepo) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockHasher struct{ mock.Mock }

func (m *mockHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Verify(plain, hash string) (bool, error) {
	args := m.Called(plain, hash)
	return args.Bool(0), args.Error(1)
}
