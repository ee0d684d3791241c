package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/session"
)

const sessionKey = "session"

// Session 会话中间件
// token的签发和校验都在上游商城API，这里只提取Bearer token
// 构造显式会话对象放进上下文，过期的token直接短路掉。
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": 401,
				"msg":  "未登录或token已过期",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": 401,
				"msg":  "token格式错误",
			})
			c.Abort()
			return
		}

		sess := session.FromToken(parts[1])
		if sess.Expired(time.Now()) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": 401,
				"msg":  "未登录或token已过期",
			})
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// AdminAuth 管理员认证中间件，必须挂在Session之后
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess.Anonymous() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": 401,
				"msg":  "未登录",
			})
			c.Abort()
			return
		}

		if !sess.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"code": 403,
				"msg":  "无管理员权限",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetSession 从上下文取出当前会话
func GetSession(c *gin.Context) session.Session {
	if v, exists := c.Get(sessionKey); exists {
		if sess, ok := v.(session.Session); ok {
			return sess
		}
	}
	return session.Session{}
}
