package dto

import (
	"encoding/json"
	"time"
)

// ==================== 登录 ====================

// LoginReq 登录请求
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResp 登录响应
// sessionId 即后续请求的 Bearer 凭证
type LoginResp struct {
	SessionID string          `json:"sessionId"`
	UserID    int64           `json:"userId"`
	Username  string          `json:"username"`
	User      json.RawMessage `json:"user,omitempty"`
	ExpiresAt time.Time       `json:"expiresAt"`
}
