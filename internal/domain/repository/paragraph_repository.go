package repository

import (
	"context"

	"github.com/oksasatya/writing-practice-api/internal/domain/entity"
)

// ParagraphRepository defines the persistence operations for paragraphs.
type ParagraphRepository interface {
	Create(ctx context.Context, p *entity.Paragraph) (*entity.Paragraph, error)
	// FindByUserID returns the user's paragraphs in storage order; empty when none.
	FindByUserID(ctx context.Context, userID string) ([]entity.Paragraph, error)
	// DeleteByID removes the paragraph if it exists. Unknown ids are not an error.
	DeleteByID(ctx context.Context, id string) error
}
