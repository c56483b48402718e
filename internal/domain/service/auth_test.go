package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uoftclubs/clubs-backend/internal/domain/common/errorz"
)

// fakeCodeStorage keeps login codes in memory.
type fakeCodeStorage struct {
	codes map[string]string
}

func newFakeCodeStorage() *fakeCodeStorage {
	return &fakeCodeStorage{codes: make(map[string]string)}
}

func (s *fakeCodeStorage) Get(_ context.Context, email string) (string, error) {
	code, ok := s.codes[email]
	if !ok {
		return "", errorz.ErrCodeExpired
	}
	return code, nil
}

func (s *fakeCodeStorage) Set(_ context.Context, email, code string, _ time.Duration) error {
	s.codes[email] = code
	return nil
}

func (s *fakeCodeStorage) Clear(_ context.Context, email string) error {
	delete(s.codes, email)
	return nil
}

func newAuthService(f *fixture, codes codeStorage, mailer *fakeMailer) *AuthService {
	return NewAuthService(codes, f.users, mailer, "test-secret", 5*time.Minute, time.Hour)
}

func TestAuthCodeRoundtrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	codes := newFakeCodeStorage()
	mailer := &fakeMailer{}
	svc := newAuthService(f, codes, mailer)

	require.NoError(t, svc.SendCode(ctx, "new@mail.utoronto.ca"))
	require.Len(t, mailer.loginCodes, 1)

	token, user, err := svc.Verify(ctx, "new@mail.utoronto.ca", mailer.loginCodes[0])
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user.ID)
	require.NotNil(t, user.EmailVerified)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "new@mail.utoronto.ca", claims.Email)
}

func TestAuthVerifyWrongCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	codes := newFakeCodeStorage()
	mailer := &fakeMailer{}
	svc := newAuthService(f, codes, mailer)

	require.NoError(t, svc.SendCode(ctx, "new@mail.utoronto.ca"))

	_, _, err := svc.Verify(ctx, "new@mail.utoronto.ca", "not-the-code")
	assert.ErrorIs(t, err, errorz.ErrInvalidCode)
}

func TestAuthVerifyExpiredCode(t *testing.T) {
	f := newFixture(t)
	codes := newFakeCodeStorage()
	svc := newAuthService(f, codes, &fakeMailer{})

	_, _, err := svc.Verify(context.Background(), "new@mail.utoronto.ca", "whatever")
	assert.ErrorIs(t, err, errorz.ErrCodeExpired)
}

func TestAuthVerifyIsSingleUse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	codes := newFakeCodeStorage()
	mailer := &fakeMailer{}
	svc := newAuthService(f, codes, mailer)

	require.NoError(t, svc.SendCode(ctx, "new@mail.utoronto.ca"))
	code := mailer.loginCodes[0]

	_, _, err := svc.Verify(ctx, "new@mail.utoronto.ca", code)
	require.NoError(t, err)

	_, _, err = svc.Verify(ctx, "new@mail.utoronto.ca", code)
	assert.ErrorIs(t, err, errorz.ErrCodeExpired)
}

func TestAuthVerifyExistingUserKeepsIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	codes := newFakeCodeStorage()
	mailer := &fakeMailer{}
	svc := newAuthService(f, codes, mailer)

	existing := f.user(t, "known@mail.utoronto.ca")

	require.NoError(t, svc.SendCode(ctx, "known@mail.utoronto.ca"))
	_, user, err := svc.Verify(ctx, "known@mail.utoronto.ca", mailer.loginCodes[0])
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f, newFakeCodeStorage(), &fakeMailer{})

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, errorz.ErrUnauthorized)
}
