package identity

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-lattice/service"
	"github.com/beka-birhanu/vinom-lattice/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"

	// ContextUserID is the key used to store the authenticated user's ID in the Gin context.
	ContextUserID = "userID"
)

// Authoriz rejects requests without a valid bearer token and stores the
// caller's claims and ID in the context.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := uuid.Parse(fmt.Sprint(claims[service.ClaimUserID]))
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextUserClaims, claims)
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user's ID stored by Authoriz.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
