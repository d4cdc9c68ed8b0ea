package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/internal/model"
	"pos_admin_v1/internal/repository"
	"pos_admin_v1/pkg/pos"
)

// 业务常量
const (
	// DefaultSessionTTL 上游 token 不带过期时间时的会话时长
	DefaultSessionTTL = 8 * time.Hour

	// BootstrapUserID 本地兜底管理员的虚拟 userId，避免与上游真实账号冲突
	BootstrapUserID = -1
)

// ErrSessionInvalid 会话不存在或已过期
var ErrSessionInvalid = errors.New("会话无效或已过期")

// BootstrapAdmin 本地兜底管理员
// 上游鉴权接口不可用时仍能登录后台排障，密码只存 bcrypt 哈希
type BootstrapAdmin struct {
	Username     string
	PasswordHash string
}

type AuthService struct {
	client      *pos.Client
	sessionRepo repository.SessionRepository
	sessionTTL  time.Duration
	bootstrap   *BootstrapAdmin
}

// NewAuthService 工厂方法
func NewAuthService(client *pos.Client, sessionRepo repository.SessionRepository, sessionTTL time.Duration, bootstrap *BootstrapAdmin) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &AuthService{
		client:      client,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
		bootstrap:   bootstrap,
	}
}

// ==================== 登录 ====================

// Login 上游登录换会话
// 会话带服务端过期时间，过期后所有受保护接口直接 401，
// 不存在"本地标记还在、上游 token 早已失效"的半死状态
func (s *AuthService) Login(ctx context.Context, req *dto.LoginReq) (*dto.LoginResp, error) {
	result, err := s.client.Login(ctx, req.Username, req.Password)
	if err != nil {
		// 上游不可用时走本地兜底管理员，避免后台彻底锁死
		if resp, ok := s.tryBootstrap(ctx, req, err); ok {
			return resp, nil
		}
		return nil, err
	}

	userID, username := extractIdentity(result.User, req.Username)
	session := &model.Session{
		ID:            uuid.New().String(),
		UpstreamToken: result.Token,
		UserID:        userID,
		Username:      username,
		User:          datatypes.JSON(result.User),
		ExpiresAt:     s.sessionDeadline(result.Token),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("创建会话失败: %w", err)
	}

	return &dto.LoginResp{
		SessionID: session.ID,
		UserID:    session.UserID,
		Username:  session.Username,
		User:      json.RawMessage(session.User),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// tryBootstrap 本地兜底登录，仅在配置了 BootstrapAdmin 且账号匹配时生效
func (s *AuthService) tryBootstrap(ctx context.Context, req *dto.LoginReq, loginErr error) (*dto.LoginResp, bool) {
	if s.bootstrap == nil || s.bootstrap.Username == "" || req.Username != s.bootstrap.Username {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword([]byte(s.bootstrap.PasswordHash), []byte(req.Password)) != nil {
		return nil, false
	}
	log.Printf("上游登录不可用 (%v)，%s 走本地兜底登录", loginErr, req.Username)

	userBlob, _ := json.Marshal(map[string]interface{}{
		"userId":   BootstrapUserID,
		"username": req.Username,
		"role":     1,
	})
	session := &model.Session{
		ID:            uuid.New().String(),
		UpstreamToken: "",
		UserID:        BootstrapUserID,
		Username:      req.Username,
		User:          datatypes.JSON(userBlob),
		ExpiresAt:     time.Now().Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		log.Printf("创建兜底会话失败: %v", err)
		return nil, false
	}

	return &dto.LoginResp{
		SessionID: session.ID,
		UserID:    session.UserID,
		Username:  session.Username,
		User:      json.RawMessage(session.User),
		ExpiresAt: session.ExpiresAt,
	}, true
}

// sessionDeadline 会话到期时间
// 优先取上游 JWT 的 exp 声明 (只解析不验签，签名由上游自己校验)，
// 解析不出来就退回固定 TTL
func (s *AuthService) sessionDeadline(token string) time.Time {
	fallback := time.Now().Add(s.sessionTTL)

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil || exp.Time.Before(time.Now()) {
		return fallback
	}
	return exp.Time
}

// extractIdentity 从上游返回的 user 对象里提取 userId 和 username
func extractIdentity(raw json.RawMessage, fallbackName string) (int64, string) {
	var u struct {
		UserID   int64  `json:"userId"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(raw, &u); err != nil || u.Username == "" {
		u.Username = fallbackName
	}
	return u.UserID, u.Username
}

// ==================== 会话校验 ====================

// Validate 校验会话，过期的顺手删掉
func (s *AuthService) Validate(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, ErrSessionInvalid
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("查询会话失败: %w", err)
	}
	if session.Expired() {
		if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
			log.Printf("删除过期会话 %s 失败: %v", sessionID, err)
		}
		return nil, ErrSessionInvalid
	}
	return session, nil
}

// ==================== 登出 ====================

// Logout 删除会话，幂等
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessionRepo.Delete(ctx, sessionID)
}

// SweepExpired 清理过期会话，由定时任务调用
func (s *AuthService) SweepExpired(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx)
}
