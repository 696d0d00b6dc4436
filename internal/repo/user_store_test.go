package repo

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserStore_Register_Success(t *testing.T) {
	gdb, mock := newTestDB(t)
	s := NewUserStore(gdb)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("alice@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	u, err := s.Register(context.Background(), "Alice", "alice@example.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	// stored value is a bcrypt hash of the password, not the password
	assert.NotEqual(t, "pw123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw123")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStore_Register_DuplicateEmail(t *testing.T) {
	gdb, mock := newTestDB(t)
	s := NewUserStore(gdb)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("alice@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(1, "alice@example.com"))

	_, err := s.Register(context.Background(), "Alice Again", "alice@example.com", "other")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	// no INSERT attempted, the first user is untouched
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStore_Register_MissingFields(t *testing.T) {
	gdb, _ := newTestDB(t)
	s := NewUserStore(gdb)

	_, err := s.Register(context.Background(), "", "a@b.c", "pw")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestUserStore_Authenticate_Success(t *testing.T) {
	gdb, mock := newTestDB(t)
	s := NewUserStore(gdb)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("alice@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}).
			AddRow(1, "Alice", "alice@example.com", string(hash)))

	u, err := s.Authenticate(context.Background(), "alice@example.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)
}

func TestUserStore_Authenticate_SameErrorForBothFailures(t *testing.T) {
	gdb, mock := newTestDB(t)
	s := NewUserStore(gdb)

	// unknown email
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.Authenticate(context.Background(), "nobody@example.com", "pw123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// wrong password
	hash, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("alice@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash"}).
			AddRow(1, "alice@example.com", string(hash)))

	_, err = s.Authenticate(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserStore_GetByID_NotFound(t *testing.T) {
	gdb, mock := newTestDB(t)
	s := NewUserStore(gdb)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE `users`.`id` = \\?").
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
