package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/writing-practice-api/internal/domain/entity"
	"github.com/oksasatya/writing-practice-api/internal/domain/repository"
)

var fixedNow = time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)

func newTestUserRepo(db Querier) *UserRepository {
	r := NewUserRepository(db)
	r.newID = func() string { return "user-1" }
	r.now = func() time.Time { return fixedNow }
	return r
}

func userRow(u entity.User) *fakeRow {
	return &fakeRow{vals: []any{u.ID, u.Username, u.Password, u.Name, u.Email, u.BirthDate, u.PhoneNumber, u.Gender}}
}

func TestUserRepository_CreateDefaultsBirthDate(t *testing.T) {
	db := &fakeQuerier{row: userRow(entity.User{ID: "user-1", Username: "alice", Password: "hash", BirthDate: fixedNow})}
	repo := newTestUserRepo(db)

	got, err := repo.Create(context.Background(), &entity.User{Username: "alice", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)
	assert.Equal(t, "alice", got.Username)

	c := db.last()
	assert.True(t, strings.Contains(c.sql, "INSERT INTO users"))
	assert.Contains(t, c.sql, "RETURNING id, username, password_hash")
	require.Len(t, c.args, 8)
	assert.Equal(t, "user-1", c.args[0])
	assert.Equal(t, fixedNow, c.args[5])
}

func TestUserRepository_CreateKeepsBirthDate(t *testing.T) {
	bd := time.Date(1999, 1, 2, 0, 0, 0, 0, time.UTC)
	db := &fakeQuerier{row: userRow(entity.User{ID: "user-1", Username: "bob", BirthDate: bd})}
	repo := newTestUserRepo(db)

	got, err := repo.Create(context.Background(), &entity.User{Username: "bob", Password: "hash", BirthDate: bd})
	require.NoError(t, err)
	assert.Equal(t, bd, got.BirthDate)
	assert.Equal(t, bd, db.last().args[5])
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db := &fakeQuerier{row: &fakeRow{err: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}}}
	repo := newTestUserRepo(db)

	_, err := repo.Create(context.Background(), &entity.User{Username: "alice", Password: "hash"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestUserRepository_CreateOtherError(t *testing.T) {
	boom := errors.New("connection reset")
	repo := newTestUserRepo(&fakeQuerier{row: &fakeRow{err: boom}})

	_, err := repo.Create(context.Background(), &entity.User{Username: "alice"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, repository.ErrDuplicate)
}

func TestUserRepository_FindByUsername(t *testing.T) {
	want := entity.User{ID: "u1", Username: "alice", Password: "hash", BirthDate: fixedNow}
	db := &fakeQuerier{row: userRow(want)}
	repo := newTestUserRepo(db)

	got, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	c := db.last()
	assert.Contains(t, c.sql, "FROM users WHERE username = $1")
	assert.True(t, strings.HasSuffix(c.sql, "LIMIT 1"))
	assert.Equal(t, []any{"alice"}, c.args)
}

func TestUserRepository_FindByUsernameMissing(t *testing.T) {
	repo := newTestUserRepo(&fakeQuerier{})

	got, err := repo.FindByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_NULUsername(t *testing.T) {
	db := &fakeQuerier{}
	repo := newTestUserRepo(db)

	got, err := repo.FindByUsername(context.Background(), "al\x00ice")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Empty(t, db.calls)

	db.row = userRow(entity.User{ID: "user-1", Username: "alice", BirthDate: fixedNow})
	_, err = repo.Create(context.Background(), &entity.User{Username: "al\x00ice", Name: "\x00A", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, "alice", db.last().args[1])
	assert.Equal(t, "A", db.last().args[3])
}
