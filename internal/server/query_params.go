package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// actingUserID reads the acting user injected by the upstream session layer.
// Returns 0 when absent or malformed.
func actingUserID(c *gin.Context) int64 {
	value := strings.TrimSpace(c.GetHeader("X-Acting-User"))
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed <= 0 {
		return 0
	}
	return parsed
}

// isPrivileged reports whether the upstream session layer marked this
// request as allowed to see unmasked customer contact details.
func isPrivileged(c *gin.Context) bool {
	return strings.EqualFold(strings.TrimSpace(c.GetHeader("X-Privileged")), "true")
}

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
