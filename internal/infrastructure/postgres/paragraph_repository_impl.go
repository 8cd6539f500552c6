package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/writing-practice-api/internal/domain/entity"
	"github.com/oksasatya/writing-practice-api/internal/domain/repository"
)

var paragraphColumns = []string{"id", "content", "point", "mistakes", "suggest", "user_id"}

type ParagraphRepository struct {
	paragraphs table[entity.Paragraph]
	newID      func() string
}

func NewParagraphRepository(db Querier) *ParagraphRepository {
	return &ParagraphRepository{
		paragraphs: table[entity.Paragraph]{
			db:      db,
			name:    "paragraphs",
			columns: paragraphColumns,
			orderBy: "created_at, id",
			scan:    scanParagraph,
		},
		newID: uuid.NewString,
	}
}

func scanParagraph(row pgx.Row) (entity.Paragraph, error) {
	var p entity.Paragraph
	err := row.Scan(&p.ID, &p.Content, &p.Point, &p.Mistakes, &p.Suggest, &p.UserID)
	if p.Mistakes == nil {
		p.Mistakes = []string{}
	}
	return p, err
}

// Create inserts a paragraph as submitted, minus NUL bytes. Mistakes default to an empty list.
func (r *ParagraphRepository) Create(ctx context.Context, p *entity.Paragraph) (*entity.Paragraph, error) {
	rec := *p
	rec.ID = r.newID()
	rec.Content = stripNUL(rec.Content)
	rec.Suggest = stripNUL(rec.Suggest)
	rec.UserID = stripNUL(rec.UserID)
	rec.Mistakes = stripNULs(rec.Mistakes)

	row := r.paragraphs.db.QueryRow(ctx, `
		INSERT INTO paragraphs (id, content, point, mistakes, suggest, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)`+r.paragraphs.returning(),
		rec.ID, rec.Content, rec.Point, rec.Mistakes, rec.Suggest, rec.UserID,
	)
	out, err := scanParagraph(row)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ParagraphRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Paragraph, error) {
	return r.paragraphs.findMany(ctx, "user_id", userID)
}

func (r *ParagraphRepository) DeleteByID(ctx context.Context, id string) error {
	return r.paragraphs.deleteByID(ctx, id)
}

var _ repository.ParagraphRepository = (*ParagraphRepository)(nil)
