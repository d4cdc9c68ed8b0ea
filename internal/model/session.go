package model

import (
	"time"

	"gorm.io/datatypes"
)

// Session 管理后台登录会话
// 取代旧版前端散落在 localStorage 里的 isAuthenticated/authToken/authUser/userId：
// 会话是带过期时间的显式对象，登出或过期即失效
type Session struct {
	// 会话 ID (uuid)，下发给前端作为 Bearer 凭证
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 上游签发的 token，转发上游请求时可能要带上
	UpstreamToken string `gorm:"size:1024" json:"-"`

	UserID   int64  `gorm:"index" json:"user_id"`
	Username string `gorm:"size:100" json:"username"`

	// 上游返回的用户对象原文，前端要什么就原样给什么
	User datatypes.JSON `json:"user"`

	// 过期即视为未登录，由定时任务清理
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
}

func (Session) TableName() string {
	return "admin_sessions"
}

// Expired 是否已过期
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
