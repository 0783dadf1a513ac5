package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/dmitrijs2005/eventplanner/internal/dbx"
	"github.com/dmitrijs2005/eventplanner/internal/server/auth"
	"github.com/dmitrijs2005/eventplanner/internal/server/models"
	"github.com/dmitrijs2005/eventplanner/internal/server/repositories/events"
	"github.com/dmitrijs2005/eventplanner/internal/server/repositories/repomanager"
	usersrepo "github.com/dmitrijs2005/eventplanner/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var t0 = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newCodec(t *testing.T) *auth.TokenCodec {
	t.Helper()
	c, err := auth.NewTokenCodec([]byte("test-secret"), time.Hour)
	require.NoError(t, err)
	return c
}

// countingHasher records how many comparisons were made.
type countingHasher struct {
	auth.PasswordHasher
	verifies int
}

func (h *countingHasher) Verify(password, hash string) bool {
	h.verifies++
	return h.PasswordHasher.Verify(password, hash)
}

func newHasher(t *testing.T) *countingHasher {
	t.Helper()
	h, err := auth.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return &countingHasher{PasswordHasher: h}
}

func newUserService(t *testing.T, db *sql.DB, rm repomanager.RepositoryManager) (*UserService, *countingHasher) {
	t.Helper()
	h := newHasher(t)
	s, err := NewUserService(db, rm, h, newCodec(t))
	require.NoError(t, err)
	s.now = func() time.Time { return t0 }
	return s, h
}

func register(t *testing.T, s *UserService, mock sqlmock.Sqlmock, email, password string) *models.User {
	t.Helper()
	mock.ExpectBegin()
	mock.ExpectCommit()
	u, err := s.CreateUser(context.Background(), email, password)
	require.NoError(t, err)
	return u
}

type fakeUsersRepo struct {
	getOut    *models.User
	getErr    error
	createErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return f.GetUserByEmail(ctx, id)
}

type fakeRepoManager struct {
	u usersrepo.Repository
	e events.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Events(db dbx.DBTX) events.Repository         { return m.e }

var errBoom = errors.New("boom")

// --- CreateUser ---

func TestCreateUser_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := repomanager.NewInMemoryRepositoryManager()
	s, _ := newUserService(t, db, rm)

	u := register(t, s, mock, "  Alice@Example.com ", "pa55word")

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "pa55word", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pa55word")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateKeepsOneRecord(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := repomanager.NewInMemoryRepositoryManager()
	s, _ := newUserService(t, db, rm)

	register(t, s, mock, "alice@example.com", "first")

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := s.CreateUser(context.Background(), "ALICE@example.com", "second")

	assert.ErrorIs(t, err, common.ErrUserExists)
	assert.Equal(t, 1, rm.UserCount())
	assert.NoError(t, mock.ExpectationsWereMet())

	// the original password still works
	sess, err := s.Login(context.Background(), "alice@example.com", "first")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
}

func TestCreateUser_UniqueViolationOnInsert(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{getErr: common.ErrorNotFound, createErr: common.ErrUserExists}}
	s, _ := newUserService(t, db, rm)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := s.CreateUser(context.Background(), "alice@example.com", "pw")
	assert.ErrorIs(t, err, common.ErrUserExists)
}

func TestCreateUser_StoreErrorIsOpaque(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{getErr: errBoom}}
	s, _ := newUserService(t, db, rm)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := s.CreateUser(context.Background(), "alice@example.com", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, common.ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_Validation(t *testing.T) {
	db, mock := newSQLMockDB(t)
	s, _ := newUserService(t, db, repomanager.NewInMemoryRepositoryManager())

	tests := []struct {
		name     string
		email    string
		password string
		fields   []string
	}{
		{"both missing", "", "", []string{"email", "password"}},
		{"blank email", "   ", "pw", []string{"email"}},
		{"bad email", "not-an-email", "pw", []string{"email"}},
		{"missing password", "a@example.com", "", []string{"password"}},
		{"password too long", "a@example.com", strings.Repeat("p", 73), []string{"password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateUser(context.Background(), tt.email, tt.password)
			var verr *common.ValidationError
			require.ErrorAs(t, err, &verr)
			var got []string
			for _, f := range verr.Fields {
				got = append(got, f.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_LongestPassword(t *testing.T) {
	db, mock := newSQLMockDB(t)
	s, _ := newUserService(t, db, repomanager.NewInMemoryRepositoryManager())

	pw := strings.Repeat("p", 72)
	register(t, s, mock, "edge@example.com", pw)

	sess, err := s.Login(context.Background(), "edge@example.com", pw)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- Login ---

func TestLogin_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	s, _ := newUserService(t, db, repomanager.NewInMemoryRepositoryManager())
	u := register(t, s, mock, "alice@example.com", "pa55word")

	sess, err := s.Login(context.Background(), " ALICE@example.com", "pa55word")
	require.NoError(t, err)
	assert.Equal(t, u.ID, sess.UserID)
	assert.Equal(t, "alice@example.com", sess.Email)

	id, err := newCodec(t).Verify(sess.Token, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.UserID)
	assert.Equal(t, "alice@example.com", id.Email)
	assert.True(t, id.ExpiresAt.Equal(t0.Add(time.Hour)))
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	db, mock := newSQLMockDB(t)
	s, h := newUserService(t, db, repomanager.NewInMemoryRepositoryManager())
	register(t, s, mock, "alice@example.com", "pa55word")

	h.verifies = 0
	_, errWrong := s.Login(context.Background(), "alice@example.com", "wrong")
	wrongVerifies := h.verifies

	h.verifies = 0
	_, errUnknown := s.Login(context.Background(), "nobody@example.com", "pa55word")
	unknownVerifies := h.verifies

	require.ErrorIs(t, errWrong, common.ErrInvalidCredentials)
	require.ErrorIs(t, errUnknown, common.ErrInvalidCredentials)
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
	assert.Equal(t, 1, wrongVerifies)
	assert.Equal(t, 1, unknownVerifies)
}

func TestLogin_StoreErrorIsNotInvalidCredentials(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{getErr: errBoom}}
	s, _ := newUserService(t, db, rm)

	_, err := s.Login(context.Background(), "alice@example.com", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s, _ := newUserService(t, db, repomanager.NewInMemoryRepositoryManager())

	_, err := s.Login(context.Background(), "", "")
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestLogin_ErrorNeverContainsPassword(t *testing.T) {
	db, mock := newSQLMockDB(t)
	s, _ := newUserService(t, db, repomanager.NewInMemoryRepositoryManager())
	register(t, s, mock, "alice@example.com", "pa55word")

	_, err := s.Login(context.Background(), "alice@example.com", "s3cr3t-guess")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "s3cr3t-guess")
}

// --- Session / Logout ---

func TestSession(t *testing.T) {
	db, mock := newSQLMockDB(t)
	s, _ := newUserService(t, db, repomanager.NewInMemoryRepositoryManager())
	u := register(t, s, mock, "alice@example.com", "pw")

	got, err := s.Session(context.Background(), auth.Principal{UserID: u.ID, Email: u.Email})
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	_, err = s.Session(context.Background(), auth.Principal{UserID: "gone"})
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	_, err = s.Session(context.Background(), auth.Principal{})
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestSession_StoreError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s, _ := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{getErr: errBoom}})

	_, err := s.Session(context.Background(), auth.Principal{UserID: "u-1"})
	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestLogout(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s, _ := newUserService(t, db, repomanager.NewInMemoryRepositoryManager())

	assert.NoError(t, s.Logout(context.Background(), auth.Principal{UserID: "u-1"}))
	assert.ErrorIs(t, s.Logout(context.Background(), auth.Principal{}), common.ErrNotAuthenticated)
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errBoom }
func (failingHasher) Verify(string, string) bool  { return false }

func TestNewUserService_HashError(t *testing.T) {
	_, err := NewUserService(nil, repomanager.NewInMemoryRepositoryManager(), failingHasher{}, newCodec(t))
	assert.ErrorIs(t, err, errBoom)
}
