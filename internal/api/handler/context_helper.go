package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ── 从 gin.Context 读取认证中间件注入的值 ──

// currentAdminID 返回 JWTAuth 注入的管理员 ID；未认证返回空串
func currentAdminID(c *gin.Context) string {
	if v, ok := c.Get("admin_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// currentTokenJTI 返回当前 access token 的 JTI 与过期时间
func currentTokenJTI(c *gin.Context) (string, time.Time) {
	jti := ""
	if v, ok := c.Get("token_jti"); ok {
		jti, _ = v.(string)
	}
	var expiresAt time.Time
	if v, ok := c.Get("token_expires_at"); ok {
		expiresAt, _ = v.(time.Time)
	}
	return jti, expiresAt
}
