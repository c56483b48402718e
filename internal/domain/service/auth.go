package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/uoftclubs/clubs-backend/internal/domain/common/errorz"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"github.com/uoftclubs/clubs-backend/pkg/generator"
)

const loginCodeLength = 8

type codeStorage interface {
	Get(ctx context.Context, email string) (string, error)
	Set(ctx context.Context, email, code string, expiration time.Duration) error
	Clear(ctx context.Context, email string) error
}

type loginMailer interface {
	SendLoginCode(to string, code string)
}

// Claims is the bearer-token payload identifying the caller.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService implements passwordless login: a one-time code is mailed
// to the address, and exchanging it yields a signed bearer token.
type AuthService struct {
	codes       codeStorage
	userStorage UserStorage
	mail        loginMailer
	secret      []byte
	codeTTL     time.Duration
	tokenTTL    time.Duration
}

func NewAuthService(codes codeStorage, userStorage UserStorage, mail loginMailer, secret string, codeTTL, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		codes:       codes,
		userStorage: userStorage,
		mail:        mail,
		secret:      []byte(secret),
		codeTTL:     codeTTL,
		tokenTTL:    tokenTTL,
	}
}

// SendCode issues a login code for the email and mails it.
func (s *AuthService) SendCode(ctx context.Context, email string) error {
	code, err := generator.RandomCode(loginCodeLength)
	if err != nil {
		return err
	}

	if err = s.codes.Set(ctx, email, code, s.codeTTL); err != nil {
		return err
	}

	s.mail.SendLoginCode(email, code)
	return nil
}

// Verify exchanges a valid code for a bearer token, creating the user
// row on first login.
func (s *AuthService) Verify(ctx context.Context, email, code string) (string, *entity.User, error) {
	stored, err := s.codes.Get(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if stored != code {
		return "", nil, errorz.ErrInvalidCode
	}

	if err = s.codes.Clear(ctx, email); err != nil {
		return "", nil, err
	}

	now := time.Now()
	user, err := s.userStorage.Upsert(ctx, &entity.User{
		Email:         email,
		EmailVerified: &now,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) generateToken(user *entity.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses a bearer token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errorz.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errorz.ErrUnauthorized
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errorz.ErrUnauthorized
	}
	return claims, nil
}
