package httputil

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/actor"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/config"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/errors"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/permissions"
)

// Claims represents the JWT claims issued by the identity provider
type Claims struct {
	jwt.RegisteredClaims
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
	IsManager   bool     `json:"is_manager"`
}

// Authenticator validates bearer tokens and populates the request context
// with the acting user. Tokens are issued by the identity provider; this
// service only validates them.
type Authenticator struct {
	config *config.JWTConfig
}

// NewAuthenticator creates a new Authenticator
func NewAuthenticator(cfg *config.JWTConfig) *Authenticator {
	return &Authenticator{config: cfg}
}

// ValidateToken validates a signed token string and returns its claims
func (a *Authenticator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("invalid token")
		}
		return []byte(a.config.Secret), nil
	})

	if err != nil {
		if strings.Contains(err.Error(), "token is expired") {
			return nil, errors.Unauthorized("token expired")
		}
		return nil, errors.Unauthorized("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.Unauthorized("invalid token")
	}

	if a.config.Issuer != "" && claims.Issuer != a.config.Issuer {
		return nil, errors.Unauthorized("invalid token issuer")
	}

	return claims, nil
}

// Middleware authenticates requests using the Authorization header.
// On success the actor and permissions are attached to the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			Error(w, errors.Unauthorized("missing authorization header"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			Error(w, errors.Unauthorized("invalid authorization header"))
			return
		}

		claims, err := a.ValidateToken(parts[1])
		if err != nil {
			Error(w, err)
			return
		}

		ctx := WithUserContext(r.Context(), claims.UserID, claims.Email, claims.Role)
		ctx = context.WithValue(ctx, PermissionsKey, claims.Permissions)
		ctx = actor.WithActor(ctx, &actor.Actor{
			ID:        claims.UserID,
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
			Email:     claims.Email,
			RoleName:  claims.Role,
			IsManager: claims.IsManager,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission returns middleware that rejects requests whose actor
// lacks the required permission.
func RequirePermission(required string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !permissions.HasPermission(GetPermissions(r.Context()), required) {
				Error(w, errors.Forbidden(""))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireManager returns middleware that rejects requests from actors
// without manager privileges. Approval endpoints use this.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a := actor.FromContext(r.Context())
		if a == nil || !a.IsManager {
			Error(w, errors.Forbidden("manager role required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
