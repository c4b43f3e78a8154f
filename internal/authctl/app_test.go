package authctl

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbarroso/auth-backend/internal/common"
	"github.com/rbarroso/auth-backend/internal/server/accessrecords"
	"github.com/rbarroso/auth-backend/internal/server/auth"
	"github.com/rbarroso/auth-backend/internal/server/credentials"
	"github.com/rbarroso/auth-backend/internal/server/sessions"
)

type fakeCredentialsRepo struct {
	created         *credentials.Credential
	updatedEmail    string
	updatedPassword string
	updateErr       error
}

func (f *fakeCredentialsRepo) FindByEmail(ctx context.Context, email string) (*credentials.Credential, error) {
	return nil, common.ErrorNotFound
}

func (f *fakeCredentialsRepo) Create(ctx context.Context, cred *credentials.Credential) (*credentials.Credential, error) {
	cred.ID = 1
	f.created = cred
	return cred, nil
}

func (f *fakeCredentialsRepo) UpdatePassword(ctx context.Context, email string, password string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedEmail = email
	f.updatedPassword = password
	return nil
}

func (f *fakeCredentialsRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

type fakeStore struct {
	db    *sql.DB
	creds *fakeCredentialsRepo
}

func (f *fakeStore) Conn() *sql.DB                           { return f.db }
func (f *fakeStore) Credentials() credentials.Repository     { return f.creds }
func (f *fakeStore) Sessions() sessions.Repository           { return nil }
func (f *fakeStore) AccessRecords() accessrecords.Repository { return nil }
func (f *fakeStore) RunMigrations(ctx context.Context) error { return nil }
func (f *fakeStore) Close() error                            { return nil }

func TestCreateUser_StoresBcryptDigest(t *testing.T) {
	creds := &fakeCredentialsRepo{}
	var out bytes.Buffer
	app := NewApp(&fakeStore{creds: creds}, &out)

	require.NoError(t, app.CreateUser(context.Background(), "new@b.com", "senha123"))

	require.NotNil(t, creds.created)
	assert.Equal(t, "new@b.com", creds.created.Email)
	assert.True(t, strings.HasPrefix(creds.created.Password, "$2"), "password must be stored hashed")
	assert.True(t, auth.VerifyPassword("senha123", creds.created.Password))
	assert.Contains(t, out.String(), "created credential id=1")
}

func TestResetPassword_StoresBcryptDigest(t *testing.T) {
	creds := &fakeCredentialsRepo{}
	var out bytes.Buffer
	app := NewApp(&fakeStore{creds: creds}, &out)

	require.NoError(t, app.ResetPassword(context.Background(), "a@b.com", "nova-senha"))

	assert.Equal(t, "a@b.com", creds.updatedEmail)
	assert.True(t, auth.VerifyPassword("nova-senha", creds.updatedPassword))
	assert.Contains(t, out.String(), "password updated for a@b.com")
}

func TestResetPassword_UnknownEmail(t *testing.T) {
	creds := &fakeCredentialsRepo{updateErr: common.ErrorNotFound}
	app := NewApp(&fakeStore{creds: creds}, &bytes.Buffer{})

	err := app.ResetPassword(context.Background(), "nobody@b.com", "x")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInspectSchema_PrintsColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.columns")).
		WillReturnRows(sqlmock.NewRows([]string{"table_name", "column_name", "data_type", "is_nullable"}).
			AddRow("credentials", "id", "bigint", "NO").
			AddRow("credentials", "email", "text", "NO"))

	var out bytes.Buffer
	app := NewApp(&fakeStore{db: db, creds: &fakeCredentialsRepo{}}, &out)

	require.NoError(t, app.InspectSchema(context.Background()))
	assert.Contains(t, out.String(), "credentials")
	assert.Contains(t, out.String(), "email")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInspectSchema_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.columns")).
		WillReturnError(errors.New("permission denied"))

	app := NewApp(&fakeStore{db: db, creds: &fakeCredentialsRepo{}}, &bytes.Buffer{})
	require.Error(t, app.InspectSchema(context.Background()))
}
