package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pos_admin_v1/internal/service"
	"pos_admin_v1/pkg/pos"
)

// Context Keys
const (
	ContextKeySessionID = "session_id"
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
)

// SessionAuth 会话认证中间件
// Bearer 后面带的是登录时下发的 sessionId，服务端查库校验过期时间，
// 过期即 401，前端收到后清理本地状态回登录页
func SessionAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "未提供认证信息",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "认证格式错误，应为 Bearer {sessionId}",
			})
			c.Abort()
			return
		}

		session, err := auth.Validate(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "会话无效或已过期",
			})
			c.Abort()
			return
		}

		// 注入会话信息到 Context
		c.Set(ContextKeySessionID, session.ID)
		c.Set(ContextKeyUserID, session.UserID)
		c.Set(ContextKeyUsername, session.Username)

		// 上游 JWT 挂到请求 ctx，代理调用原样转发
		c.Request = c.Request.WithContext(
			pos.WithToken(c.Request.Context(), session.UpstreamToken))

		c.Next()
	}
}

// GetSessionID 从 gin context 取会话 ID
func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(ContextKeySessionID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// GetUserID 从 gin context 取用户 ID
func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get(ContextKeyUserID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// GetUsername 从 gin context 取用户名
func GetUsername(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyUsername); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}
