package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows every origin, method and header. The service fronts browser
// point-of-sale clients on arbitrary origins.
func CORS() gin.HandlerFunc {
	config := cors.DefaultConfig()
	// Echo the caller's origin so credentialed requests stay allowed
	config.AllowOriginFunc = func(origin string) bool { return true }
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	return cors.New(config)
}
