package middleware

import (
	"net/http"
	"strings"
	"time"

	companyRepo "agendly/database/repository/company"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// authCacheTTL bounds how long a validated token skips the database
// lookup. Revocation clears the entry immediately.
const authCacheTTL = 5 * time.Minute

// JWTAuthCompanyMiddleware authenticates staff requests. The token must
// carry a valid signature AND its hash must match the one stored for the
// company; issuing a new token or revoking invalidates all older ones.
func JWTAuthCompanyMiddleware(repo companyRepo.CompanyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		subject, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		if hash, ok := cachedTokenHash(c, subject); ok {
			if hash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
				return
			}
			c.Set("companyID", subject)
			c.Next()
			return
		}

		comp, err := repo.GetByTokenHash(c.Request.Context(), computedHash)
		if err != nil || comp == nil || comp.ID != subject {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked or company not found"})
			return
		}

		cacheTokenHash(c, comp.ID, computedHash)
		c.Set("companyID", comp.ID)
		c.Next()
	}
}

func cachedTokenHash(c *gin.Context, companyID string) (string, bool) {
	if utils.AuthCacheClient == nil {
		return "", false
	}
	hash, err := utils.AuthCacheClient.Get(c.Request.Context(), authCacheKey(companyID)).Result()
	if err != nil || hash == "" {
		return "", false
	}
	return hash, true
}

func cacheTokenHash(c *gin.Context, companyID, hash string) {
	if utils.AuthCacheClient == nil {
		return
	}
	utils.AuthCacheClient.Set(c.Request.Context(), authCacheKey(companyID), hash, authCacheTTL)
}

func authCacheKey(companyID string) string {
	return "auth:company:" + companyID
}
