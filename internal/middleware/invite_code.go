package middleware

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// InviteCodeMiddleware gates signup behind a shared invite code. When the
// env var is unset signup stays open and a warning is logged instead.
func InviteCodeMiddleware() gin.HandlerFunc {
	inviteCode := os.Getenv("SIGNUP_INVITE_CODE")
	if inviteCode == "" {
		log.Println("InviteCodeMiddleware(): SIGNUP_INVITE_CODE not set, signup is open")
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return func(c *gin.Context) {
		clientKey := c.GetHeader("X-Invite-Code")

		if clientKey != inviteCode {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid invite code"})
			return
		}
		c.Next()
	}
}
