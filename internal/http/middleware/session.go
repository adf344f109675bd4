package middleware

import (
	"strings"

	"backoffice/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionKey = "session_context"

type sessionClaims struct {
	AgencyID int64  `json:"agency_id"`
	Branch   string `json:"branch"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Session parses the Bearer token issued by the external auth system into an
// explicit SessionContext on the gin context. Tokens are optional: requests
// without one proceed with an anonymous context, so the tenant info is
// threaded explicitly instead of read from ambient storage by each page.
func Session(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := parseSession(c.GetHeader("Authorization"), secret)
		c.Set(sessionKey, sc)
		c.Next()
	}
}

func parseSession(header, secret string) domain.SessionContext {
	var sc domain.SessionContext
	if secret == "" {
		return sc
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if raw == "" || raw == header {
		return sc
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		// token rusak/kedaluwarsa -> anonim, biar endpoint publik tetap jalan
		return sc
	}

	if sub := claims.Subject; sub != "" {
		sc.UserID = parseID(sub)
	}
	sc.AgencyID = domain.ID(claims.AgencyID)
	sc.Branch = claims.Branch
	sc.Role = claims.Role
	return sc
}

func parseID(s string) domain.ID {
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int64(r-'0')
	}
	return domain.ID(n)
}

// GetSession returns the session context set by Session middleware.
func GetSession(c *gin.Context) domain.SessionContext {
	if c == nil {
		return domain.SessionContext{}
	}
	if v, ok := c.Get(sessionKey); ok {
		if sc, ok := v.(domain.SessionContext); ok {
			return sc
		}
	}
	return domain.SessionContext{}
}
