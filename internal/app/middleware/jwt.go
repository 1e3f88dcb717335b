package middleware

import (
	"strings"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services"
	"github.com/Hellwig19/Com-Dominium-API/internal/error/response"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware wires the JWT service used by the guards
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

func extractToken(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// VerificaToken validates the bearer token and stores the subject in
// the context under userID, userNome and userNivel
func VerificaToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Token não fornecido")
			c.Abort()
			return
		}

		claims, err := jwtService.ExtractClaims(extractToken(authHeader))
		if err != nil {
			response.Unauthorized(c, "Token inválido ou expirado")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userNome", claims.UserName)
		c.Set("userNivel", claims.UserLevel)
		c.Next()
	}
}

// UserID returns the authenticated subject id from the context
func UserID(c *gin.Context) string {
	id, _ := c.Get("userID")
	s, _ := id.(string)
	return s
}

// UserNivel returns the authenticated subject level from the context
func UserNivel(c *gin.Context) int {
	nivel, _ := c.Get("userNivel")
	n, _ := nivel.(int)
	return n
}
