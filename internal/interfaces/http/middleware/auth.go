package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ivrelife/nexus/internal/domain/identity"
	"github.com/ivrelife/nexus/internal/infrastructure/auth"
	"github.com/ivrelife/nexus/internal/infrastructure/logger"
	"github.com/ivrelife/nexus/internal/interfaces/http/dto"
)

// Context keys for the authenticated actor
const (
	ClaimsKey      = "jwt_claims"
	ActorKey       = "actor"
	AccessTokenKey = "access_token"

	authHeaderKey = "Authorization"
	bearerPrefix  = "Bearer "
)

// AuthConfig holds configuration for the authentication middleware
type AuthConfig struct {
	JWTService *auth.JWTService
	// Blacklist is optional; when nil, revocation checks are skipped.
	Blacklist auth.TokenBlacklist
	Logger    *zap.Logger
}

// RequireAuth validates the bearer token and resolves it into the acting
// identity. Every protected handler downstream reads the actor from context;
// authorization itself happens in the application layer.
func RequireAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderKey)
		if header == "" {
			abortUnauthorized(c, "UNAUTHORIZED", "Missing authorization header")
			return
		}
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, "TOKEN_INVALID", "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimPrefix(header, bearerPrefix)

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			code, message := tokenErrorCode(err)
			abortUnauthorized(c, code, message)
			return
		}

		if cfg.Blacklist != nil {
			ctx := c.Request.Context()

			if claims.ID != "" {
				revoked, err := cfg.Blacklist.IsBlacklisted(ctx, claims.ID)
				if err != nil {
					// Fail open on blacklist backend errors; availability
					// outweighs the small revocation window.
					if cfg.Logger != nil {
						cfg.Logger.Error("Failed to check token blacklist",
							zap.String("jti", claims.ID), zap.Error(err))
					}
				} else if revoked {
					abortUnauthorized(c, "TOKEN_REVOKED", "Token has been revoked")
					return
				}
			}

			if claims.UserID != "" {
				invalidated, err := cfg.Blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
				if err != nil {
					if cfg.Logger != nil {
						cfg.Logger.Error("Failed to check user token invalidation",
							zap.String("user_id", claims.UserID), zap.Error(err))
					}
				} else if invalidated {
					abortUnauthorized(c, "TOKEN_REVOKED", "Session has been invalidated")
					return
				}
			}
		}

		actor := claims.Actor()
		if !actor.IsAuthenticated() {
			// Parseable token with an identity outside the fixed role set;
			// fail closed.
			abortUnauthorized(c, "TOKEN_INVALID", "Token identity could not be resolved")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(ActorKey, actor)
		c.Set(AccessTokenKey, tokenString)

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithActor(ctx, log, actor.ID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetActor retrieves the authenticated actor from gin context. Returns the
// zero actor when no authentication middleware ran.
func GetActor(c *gin.Context) identity.Actor {
	if v, exists := c.Get(ActorKey); exists {
		if actor, ok := v.(identity.Actor); ok {
			return actor
		}
	}
	return identity.Actor{}
}

// GetClaims retrieves the validated JWT claims from gin context
func GetClaims(c *gin.Context) *auth.Claims {
	if v, exists := c.Get(ClaimsKey); exists {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetAccessToken retrieves the raw bearer token from gin context
func GetAccessToken(c *gin.Context) string {
	return c.GetString(AccessTokenKey)
}

func tokenErrorCode(err error) (string, string) {
	switch err {
	case auth.ErrExpiredToken:
		return "TOKEN_EXPIRED", "Token has expired"
	case auth.ErrTokenNotYetValid:
		return "TOKEN_INVALID", "Token is not yet valid"
	case auth.ErrInvalidTokenType:
		return "TOKEN_INVALID", "Invalid token type"
	default:
		return "TOKEN_INVALID", "Invalid token"
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(code, message, GetRequestID(c)))
}
