package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/oksasatya/writing-practice-api/internal/domain/entity"
	repo "github.com/oksasatya/writing-practice-api/internal/domain/repository"
)

type ParagraphService struct {
	Repo repo.ParagraphRepository
}

func NewParagraphService(repo repo.ParagraphRepository) *ParagraphService {
	return &ParagraphService{Repo: repo}
}

// SubmitInput is stored as given. Point is computed by the client and may be absent.
type SubmitInput struct {
	Content  string
	Point    *float64
	Mistakes []string
	Suggest  string
	UserID   string
}

func (s *ParagraphService) Submit(ctx context.Context, in SubmitInput) (*entity.Paragraph, error) {
	p, err := s.Repo.Create(ctx, &entity.Paragraph{
		Content:  in.Content,
		Point:    in.Point,
		Mistakes: in.Mistakes,
		Suggest:  in.Suggest,
		UserID:   in.UserID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create paragraph")
	}
	return p, nil
}

// ListByUser returns the user's paragraphs; an unknown user yields an empty list.
func (s *ParagraphService) ListByUser(ctx context.Context, userID string) ([]entity.Paragraph, error) {
	list, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "list paragraphs of %s", userID)
	}
	if list == nil {
		list = []entity.Paragraph{}
	}
	return list, nil
}

// Delete removes a paragraph. Deleting a missing id succeeds.
func (s *ParagraphService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return errors.Wrapf(err, "delete paragraph %s", id)
	}
	return nil
}
