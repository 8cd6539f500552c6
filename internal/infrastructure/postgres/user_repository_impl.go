package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/writing-practice-api/internal/domain/entity"
	"github.com/oksasatya/writing-practice-api/internal/domain/repository"
)

var userColumns = []string{
	"id", "username", "password_hash", "name", "email", "birth_date", "phone_number", "gender",
}

type UserRepository struct {
	users table[entity.User]
	newID func() string
	now   func() time.Time
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		users: table[entity.User]{
			db:      db,
			name:    "users",
			columns: userColumns,
			orderBy: "created_at, id",
			scan:    scanUser,
		},
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func scanUser(row pgx.Row) (entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Email,
		&u.BirthDate, &u.PhoneNumber, &u.Gender)
	return u, err
}

// Create inserts a new user. A missing birth date defaults to the creation time.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	rec := *u
	rec.ID = r.newID()
	rec.Username = stripNUL(rec.Username)
	rec.Name = stripNUL(rec.Name)
	rec.Email = stripNUL(rec.Email)
	rec.PhoneNumber = stripNUL(rec.PhoneNumber)
	rec.Gender = stripNUL(rec.Gender)
	if rec.BirthDate.IsZero() {
		rec.BirthDate = r.now()
	}

	row := r.users.db.QueryRow(ctx, `
		INSERT INTO users (id, username, password_hash, name, email, birth_date, phone_number, gender)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`+r.users.returning(),
		rec.ID, rec.Username, rec.Password, rec.Name, rec.Email, rec.BirthDate, rec.PhoneNumber, rec.Gender,
	)
	out, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}
	return &out, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.users.findOne(ctx, "username", username)
}

var _ repository.UserRepository = (*UserRepository)(nil)
