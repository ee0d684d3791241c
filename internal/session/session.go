package session

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// Session 当前请求的会话，随调用链显式传递
// token由上游商城API签发并负责校验，网关不持有密钥，
// 这里只做不验签的解析，提前读出过期时间和身份声明。
type Session struct {
	Token     string
	UserID    string
	IsAdmin   bool
	ExpiresAt int64 // exp声明，秒级时间戳，0表示token里没有
}

// FromToken 从Bearer token构造会话
// 解析失败不报错：身份的最终裁决权在上游，坏token照样转发，
// 由上游返回401，网关只是拿不到提前短路的依据而已。
func FromToken(token string) Session {
	s := Session{Token: token}
	if token == "" {
		return s
	}

	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return s
	}

	if v, ok := claims["user_id"].(string); ok {
		s.UserID = v
	} else if v, ok := claims["sub"].(string); ok {
		s.UserID = v
	}
	if v, ok := claims["is_admin"].(bool); ok {
		s.IsAdmin = v
	}
	if v, ok := claims["exp"].(float64); ok {
		s.ExpiresAt = int64(v)
	}

	return s
}

// Anonymous 是否未携带token
func (s Session) Anonymous() bool {
	return s.Token == ""
}

// Expired token是否已过期
// 没有exp声明时视为未过期，交给上游判断
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt > 0 && now.Unix() >= s.ExpiresAt
}
