package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"restopos/pos-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity issued by the auth service to every terminal user.
type Claims struct {
	EmployeeID int         `json:"employee_id"`
	Role       domain.Role `json:"role"`
	jwt.RegisteredClaims
}

type contextKey string

const actorContextKey contextKey = "actor"

type Authenticator struct {
	Secret []byte
}

func NewAuthenticator(secret []byte) *Authenticator {
	return &Authenticator{Secret: secret}
}

func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr, err := extractBearerToken(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized: " + err.Error(), Code: "unauthorized"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			return a.Secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid || claims.EmployeeID <= 0 {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized: invalid token", Code: "unauthorized"})
			return
		}

		actor := domain.Actor{EmployeeID: claims.EmployeeID, Role: domain.Role(strings.ToLower(string(claims.Role)))}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// SignToken issues a token for actor. The auth service owns issuance in
// production; this is used by tooling and tests.
func (a *Authenticator) SignToken(actor domain.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		EmployeeID: actor.EmployeeID,
		Role:       actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.Secret)
}

func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

func ActorFrom(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(domain.Actor)
	return actor, ok
}

func extractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization format")
	}
	return parts[1], nil
}
