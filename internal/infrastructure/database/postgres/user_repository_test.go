package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	domainUser "sentiment-analysis-api/internal/domain/user"
	"sentiment-analysis-api/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("development", "error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newMockRepo(t *testing.T) (domainUser.Repository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: mockDB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	return NewUserRepository(&DB{DB: gormDB}), mock
}

func userColumns() []string {
	return []string{
		"id", "email", "username", "hashed_password", "full_name",
		"is_active", "is_superuser", "created_at", "updated_at",
	}
}

func userRow(id int64, username string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userColumns()).
		AddRow(id, username+"@example.com", username, "$2a$10$hash", nil, true, false, now, now)
}

func TestGetByUsername(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("alice", 1).
		WillReturnRows(userRow(1, "alice"))

	found, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)
	assert.Equal(t, "alice", found.Username)
	assert.True(t, found.IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("nobody", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.True(t, errors.Is(err, domainUser.ErrUserNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(int64(7), 1).
		WillReturnRows(userRow(7, "alice"))

	found, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.True(t, errors.Is(err, domainUser.ErrUserNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectCommit()

	u := &domainUser.User{
		Email:          "alice@example.com",
		Username:       "alice",
		HashedPassword: "$2a$10$hash",
		IsActive:       true,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, int64(3), u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateUsername(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	u := &domainUser.User{
		Email:          "alice@example.com",
		Username:       "alice",
		HashedPassword: "$2a$10$hash",
	}
	err := repo.Create(context.Background(), u)
	assert.True(t, errors.Is(err, domainUser.ErrDuplicateUsername))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows(userColumns())
	now := time.Now()
	rows.AddRow(1, "a@example.com", "a", "h", nil, true, false, now, now)
	rows.AddRow(2, "b@example.com", "b", "h", nil, true, false, now, now)

	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY id LIMIT \$1`).
		WithArgs(2).
		WillReturnRows(rows)

	users, err := repo.List(context.Background(), 0, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].Username)
	assert.Equal(t, "b", users[1].Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WithArgs("alice@example.com", nil, "$2a$10$hash", sqlmock.AnyArg(), "alice", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &domainUser.User{
		ID:             1,
		Email:          "alice@example.com",
		Username:       "alice",
		HashedPassword: "$2a$10$hash",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &domainUser.User{ID: 42, Username: "ghost"})
	assert.True(t, errors.Is(err, domainUser.ErrUserNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WithArgs(false, sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Deactivate(context.Background(), 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivate_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Deactivate(context.Background(), 42)
	assert.True(t, errors.Is(err, domainUser.ErrUserNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClassifyDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "username index",
			err:  errors.New(`duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`),
			want: domainUser.ErrDuplicateUsername,
		},
		{
			name: "email index",
			err:  errors.New(`duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`),
			want: domainUser.ErrDuplicateEmail,
		},
		{
			name: "unrelated error",
			err:  sql.ErrConnDone,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyDuplicateKey(tt.err)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.True(t, errors.Is(got, tt.want))
			}
		})
	}
}
