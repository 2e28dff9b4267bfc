package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"planline.app/api-server/internal/model"
	"planline.app/api-server/internal/store"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// AuthService is the identity provider: it turns a bearer credential into an
// Actor and mints credentials for provisioned users. Password verification is
// not part of this server; tokens are issued to already-authenticated users.
type AuthService interface {
	ResolveActor(ctx context.Context, credential string) (*model.Actor, error)
	IssueToken(user *model.User) (string, error)
}

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type authService struct {
	users    store.UserStore
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users store.UserStore, secret string, tokenTTL time.Duration) AuthService {
	return &authService{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// ResolveActor validates the token and loads the user it names. The store is
// authoritative for organization and active state, so revoking a user takes
// effect immediately rather than at token expiry.
func (s *authService) ResolveActor(ctx context.Context, credential string) (*model.Actor, error) {
	token, err := jwt.ParseWithClaims(credential, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		slog.DebugContext(ctx, "token validation failed", "error", err)
		return nil, ErrUnauthenticated
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok {
		return nil, ErrUnauthenticated
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return model.ActorForUser(user), nil
}

func (s *authService) IssueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
