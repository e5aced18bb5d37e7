package middleware

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"procurement/internal/model"
	"procurement/internal/repository"
	"procurement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	identityKey   = "identity"
	sessionCookie = "__session"
)

var errMissingToken = errors.New("authorization is missing")

// identityClaims is the identity provider's session token payload
type identityClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// roleCacheEntry stores the cached profile role for an identity with TTL
type roleCacheEntry struct {
	role      string
	expiresAt time.Time
}

// Auth verifies identity provider tokens and authorizes callers by profile role
type Auth struct {
	secret    []byte
	users     repository.UserRepository
	roleTTL   time.Duration
	roleCache sync.Map // clerkID -> roleCacheEntry
	log       *zap.Logger
}

func NewAuth(secret []byte, users repository.UserRepository, roleTTL time.Duration, log *zap.Logger) *Auth {
	return &Auth{secret: secret, users: users, roleTTL: roleTTL, log: log}
}

// ParseToken validates an HS256 session token and extracts the caller identity
func (a *Auth) ParseToken(tokenString string) (model.Identity, error) {
	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return model.Identity{}, err
	}
	if !token.Valid || claims.Subject == "" {
		return model.Identity{}, jwt.ErrTokenInvalidClaims
	}

	return model.Identity{
		ID:       claims.Subject,
		FullName: claims.Name,
		Email:    claims.Email,
		ImageURL: claims.Picture,
	}, nil
}

// RequireIdentity rejects requests without a valid session token and stores the identity in the context
func (a *Auth) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := a.identityFromRequest(c)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, errMissingToken) {
				msg = "Authorization is missing"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, msg))
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// OptionalIdentity stores the identity when a valid token is present and never rejects
func (a *Auth) OptionalIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, err := a.identityFromRequest(c); err == nil {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

// RequireRole checks the caller's stored profile role against allowedRoles.
// Must run after RequireIdentity.
func (a *Auth) RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return
		}

		role, err := a.roleFor(c, identity.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: no profile"))
				return
			}
			a.log.Error("role lookup failed", zap.String("clerk_id", identity.ID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to verify permissions"))
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: insufficient permissions"))
	}
}

// ProfileUpdated drops the cached role so the next request sees the new one
func (a *Auth) ProfileUpdated(user *model.User) {
	a.roleCache.Delete(user.ClerkID)
}

// IdentityFrom returns the identity stored by RequireIdentity or OptionalIdentity
func IdentityFrom(c *gin.Context) (model.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return model.Identity{}, false
	}
	identity, ok := v.(model.Identity)
	return identity, ok
}

// identityFromRequest reads the session cookie first, then the Authorization header
func (a *Auth) identityFromRequest(c *gin.Context) (model.Identity, error) {
	tokenString, cookieErr := c.Cookie(sessionCookie)
	if cookieErr != nil || tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return model.Identity{}, errMissingToken
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return model.Identity{}, jwt.ErrTokenMalformed
		}
		tokenString = parts[1]
	}
	return a.ParseToken(tokenString)
}

func (a *Auth) roleFor(c *gin.Context, clerkID string) (string, error) {
	if entry, ok := a.roleCache.Load(clerkID); ok {
		cached := entry.(roleCacheEntry)
		if time.Now().Before(cached.expiresAt) {
			return cached.role, nil
		}
	}

	user, err := a.users.GetByClerkID(c.Request.Context(), clerkID)
	if err != nil {
		return "", err
	}

	a.roleCache.Store(clerkID, roleCacheEntry{
		role:      user.Role,
		expiresAt: time.Now().Add(a.roleTTL),
	})
	return user.Role, nil
}
