package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"unvaultd/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"
	identityKey = "identity"

	SignInPath = "/sign-in"
)

// Identity is the signed-in member resolved once per request.
type Identity struct {
	UserID string
	Role   string
}

// TokenSource yields a token when the request carries no Authorization header,
// e.g. the session cookie set after sign-in.
type TokenSource interface {
	Token(r *http.Request) (string, bool)
}

// QueryToken reads the token from a query parameter. Browsers cannot set
// headers on a websocket handshake.
type QueryToken string

func (q QueryToken) Token(r *http.Request) (string, bool) {
	token := r.URL.Query().Get(string(q))
	return token, token != ""
}

// AuthMiddleware rejects requests without a valid identity. Browsers are sent
// to the sign-in page, API clients get 401.
func AuthMiddleware(jwtService *jwt.Service, sources ...TokenSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, errMsg := resolve(c, jwtService, sources)
		if identity == nil {
			unauthenticated(c, errMsg)
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the identity when one is present and never rejects.
func OptionalAuthMiddleware(jwtService *jwt.Service, sources ...TokenSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, _ := resolve(c, jwtService, sources); identity != nil {
			setIdentity(c, identity)
		}
		c.Next()
	}
}

// CurrentUserID returns the id of the signed-in member, if any.
func CurrentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(UserIDKey)
	return userID, userID != ""
}

func IdentityFrom(c *gin.Context) (Identity, bool) {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(Identity); ok {
			return identity, true
		}
	}
	userID, ok := CurrentUserID(c)
	return Identity{UserID: userID, Role: c.GetString(UserRoleKey)}, ok
}

// WantsHTML reports whether the client is a browser navigating to a page.
func WantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

func resolve(c *gin.Context, jwtService *jwt.Service, sources []TokenSource) (*Identity, string) {
	token := ""
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, "Invalid authorization header format"
		}
		token = parts[1]
	} else {
		for _, source := range sources {
			if t, ok := source.Token(c.Request); ok {
				token = t
				break
			}
		}
	}

	if token == "" {
		return nil, "Authorization required"
	}

	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		return nil, "Invalid or expired token"
	}
	return &Identity{UserID: claims.UserID, Role: claims.Role}, ""
}

func setIdentity(c *gin.Context, identity *Identity) {
	c.Set(UserIDKey, identity.UserID)
	c.Set(UserRoleKey, identity.Role)
	c.Set(identityKey, *identity)
}

func unauthenticated(c *gin.Context, errMsg string) {
	if WantsHTML(c) {
		target := SignInPath + "?redirect_to=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusSeeOther, target)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errMsg})
}
