package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/RecipeBox/configs"
	"droscher.com/RecipeBox/pkg/model"
)

var (
	ErrNoToken      = errors.New("authorization header not found")
	ErrBadFormat    = errors.New("authorization format must be Bearer {token} or Token {token}")
	ErrInvalidToken = errors.New("invalid token")
)

type UserKey struct{}

// UserLookup resolves the subject of a token back to a stored user.
type UserLookup interface {
	GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*model.User, error)
}

type Manager struct {
	conf   *configs.Config
	users  UserLookup
	logger *zap.Logger
	now    func() time.Time
}

func NewAuthManager(conf *configs.Config, users UserLookup, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, users: users, logger: logger, now: time.Now}
}

func (a *Manager) IssueToken(user *model.User) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   user.UUID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.conf.Auth.TokenTTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.conf.Auth.SecretKey))
}

// Authenticate resolves the user behind the Authorization header, if any, and stores it
// under UserKey{}. Requests without the header continue anonymously; a header that does not
// carry a valid token is rejected with 401.
func (a *Manager) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken, err := extractTokenFromHeader(r.Header)
		if errors.Is(err, ErrNoToken) {
			next.ServeHTTP(w, r)

			return
		}

		if err != nil {
			writeUnauthorized(w, err)

			return
		}

		user, err := a.userFromToken(r.Context(), accessToken)
		if err != nil {
			a.logger.Warn("rejected token", zap.Error(err))
			writeUnauthorized(w, ErrInvalidToken)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserKey{}, user)))
	})
}

// RequireUser rejects anonymous requests. It must run after Authenticate.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFromContext(r.Context()) == nil {
			writeUnauthorized(w, ErrNoToken)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(UserKey{}).(*model.User)

	return user
}

// UserID returns the acting user's ID, or 0 for anonymous requests.
func UserID(ctx context.Context) uint {
	if user := UserFromContext(ctx); user != nil {
		return user.ID
	}

	return 0
}

func (a *Manager) userFromToken(ctx context.Context, accessToken string) (*model.User, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(accessToken, claims, keyFunc)
	if err != nil {
		return nil, fmt.Errorf("error parsing token: %w", err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	userUUID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject: %w", ErrInvalidToken, err)
	}

	return a.users.GetUserByUUID(ctx, userUUID)
}

func extractTokenFromHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return "", ErrNoToken
	}

	for _, prefix := range []string{"Bearer ", "bearer ", "Token "} {
		if token, found := strings.CutPrefix(authorization, prefix); found && len(token) > 0 {
			return token, nil
		}
	}

	return "", ErrBadFormat
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": err.Error()})
}
