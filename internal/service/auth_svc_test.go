package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/internal/model"
	"pos_admin_v1/internal/repository"
	"pos_admin_v1/pkg/pos"
)

// ==================== 测试辅助 ====================

func setupSessionStore(t *testing.T) repository.SessionRepository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Session{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return repository.NewSessionRepository(db)
}

func loginUpstream(t *testing.T, handler http.HandlerFunc) *pos.Client {
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return pos.NewClient(&pos.Config{BaseURL: ts.URL})
}

// ==================== 登录 ====================

func TestAuthLoginCreatesSession(t *testing.T) {
	client := loginUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"data":{"token":"tok-abc","user":{"userId":9,"username":"admin","role":1}}}`)
	})
	svc := NewAuthService(client, setupSessionStore(t), time.Hour, nil)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &dto.LoginReq{Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatal("应下发 sessionId")
	}
	if resp.UserID != 9 || resp.Username != "admin" {
		t.Errorf("身份信息不符: %+v", resp)
	}
	if !resp.ExpiresAt.After(time.Now()) {
		t.Error("会话过期时间应在未来")
	}

	// 下发的 sessionId 能通过校验
	session, err := svc.Validate(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("校验失败: %v", err)
	}
	if session.UpstreamToken != "tok-abc" {
		t.Errorf("上游 token 未入库: %s", session.UpstreamToken)
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	client := loginUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	svc := NewAuthService(client, setupSessionStore(t), time.Hour, nil)

	if _, err := svc.Login(context.Background(), &dto.LoginReq{Username: "admin", Password: "bad"}); err == nil {
		t.Fatal("密码错误应登录失败")
	}
}

// ==================== 会话过期 ====================

func TestAuthValidateExpiredSession(t *testing.T) {
	client := loginUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"data":{"token":"tok-x","user":{"userId":1,"username":"a"}}}`)
	})
	repo := setupSessionStore(t)
	svc := NewAuthService(client, repo, time.Hour, nil)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &dto.LoginReq{Username: "a", Password: "p"})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	// 把会话改成已过期
	session, _ := repo.GetByID(ctx, resp.SessionID)
	session.ExpiresAt = time.Now().Add(-time.Minute)
	_ = repo.Delete(ctx, session.ID)
	_ = repo.Create(ctx, session)

	if _, err := svc.Validate(ctx, resp.SessionID); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("过期会话应返回 ErrSessionInvalid, got %v", err)
	}

	// 过期会话被顺手删掉，第二次校验也一样失败
	if _, err := svc.Validate(ctx, resp.SessionID); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("二次校验应同样失败, got %v", err)
	}
}

func TestAuthValidateUnknownSession(t *testing.T) {
	client := loginUpstream(t, func(w http.ResponseWriter, r *http.Request) {})
	svc := NewAuthService(client, setupSessionStore(t), time.Hour, nil)

	if _, err := svc.Validate(context.Background(), "no-such-session"); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("未知会话应返回 ErrSessionInvalid, got %v", err)
	}
	if _, err := svc.Validate(context.Background(), ""); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("空会话应返回 ErrSessionInvalid, got %v", err)
	}
}

// ==================== 登出 ====================

func TestAuthLogout(t *testing.T) {
	client := loginUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"data":{"token":"tok-y","user":{"userId":2,"username":"b"}}}`)
	})
	svc := NewAuthService(client, setupSessionStore(t), time.Hour, nil)
	ctx := context.Background()

	resp, _ := svc.Login(ctx, &dto.LoginReq{Username: "b", Password: "p"})

	if err := svc.Logout(ctx, resp.SessionID); err != nil {
		t.Fatalf("登出失败: %v", err)
	}
	if _, err := svc.Validate(ctx, resp.SessionID); !errors.Is(err, ErrSessionInvalid) {
		t.Fatal("登出后会话应失效")
	}
	// 幂等
	if err := svc.Logout(ctx, resp.SessionID); err != nil {
		t.Fatalf("重复登出应幂等: %v", err)
	}
}

// ==================== 本地兜底 ====================

func TestAuthBootstrapFallback(t *testing.T) {
	// 上游彻底不可用
	client := pos.NewClient(&pos.Config{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})

	hash, err := bcrypt.GenerateFromPassword([]byte("rescue-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成哈希失败: %v", err)
	}
	svc := NewAuthService(client, setupSessionStore(t), time.Hour, &BootstrapAdmin{
		Username:     "rescue",
		PasswordHash: string(hash),
	})
	ctx := context.Background()

	// 正确的兜底账号能登录
	resp, err := svc.Login(ctx, &dto.LoginReq{Username: "rescue", Password: "rescue-pass"})
	if err != nil {
		t.Fatalf("兜底登录失败: %v", err)
	}
	if resp.UserID != BootstrapUserID {
		t.Errorf("兜底账号应使用虚拟 userId, got %d", resp.UserID)
	}
	if _, err := svc.Validate(ctx, resp.SessionID); err != nil {
		t.Errorf("兜底会话应可校验: %v", err)
	}

	// 密码错还是失败
	if _, err := svc.Login(ctx, &dto.LoginReq{Username: "rescue", Password: "wrong"}); err == nil {
		t.Fatal("兜底账号密码错误应失败")
	}

	// 其他账号不享受兜底
	if _, err := svc.Login(ctx, &dto.LoginReq{Username: "someone", Password: "rescue-pass"}); err == nil {
		t.Fatal("非兜底账号在上游不可用时应失败")
	}
}

// ==================== 过期清理 ====================

func TestAuthSweepExpired(t *testing.T) {
	client := loginUpstream(t, func(w http.ResponseWriter, r *http.Request) {})
	repo := setupSessionStore(t)
	svc := NewAuthService(client, repo, time.Hour, nil)
	ctx := context.Background()

	_ = repo.Create(ctx, &model.Session{ID: "expired-1", UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)})
	_ = repo.Create(ctx, &model.Session{ID: "alive-1", UserID: 2, ExpiresAt: time.Now().Add(time.Hour)})

	count, err := svc.SweepExpired(ctx)
	if err != nil {
		t.Fatalf("清理失败: %v", err)
	}
	if count != 1 {
		t.Errorf("清理条数 = %d, want 1", count)
	}
}
