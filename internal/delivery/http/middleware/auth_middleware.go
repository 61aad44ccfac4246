package middleware

import (
	"context"
	"net/http"
	"strings"

	"home-services-backend/internal/domain/entity"
	"home-services-backend/internal/domain/repository"
	"home-services-backend/pkg/jwt"
	"home-services-backend/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const IdentityKey contextKey = "identity"

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenStore repository.TokenStore
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenStore repository.TokenStore, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
		log:        log,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}
		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		role := entity.Role(claims.Role)
		if !role.IsValid() {
			response.Unauthorized(w, "Invalid token")
			return
		}

		// Only whitelisted token ids are live; logout removes them.
		exists, err := m.tokenStore.Exists(r.Context(), repository.TokenKindAccess, claims.UserID, claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to check access token: %+v", err)
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !exists {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := WithIdentity(r.Context(), entity.Identity{
			UserID:  claims.UserID,
			Email:   claims.Email,
			Role:    role,
			TokenID: claims.TokenID,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithIdentity returns a copy of ctx carrying the authenticated caller.
func WithIdentity(ctx context.Context, who entity.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, who)
}

// GetIdentityFromContext extracts the authenticated caller from context
func GetIdentityFromContext(ctx context.Context) (entity.Identity, bool) {
	who, ok := ctx.Value(IdentityKey).(entity.Identity)
	return who, ok
}
