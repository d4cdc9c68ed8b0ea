package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pos_admin_v1/internal/model"
)

// ==================== 测试辅助 ====================

func setupSessionTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.Session{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

func newTestSession(userID int64, ttl time.Duration) *model.Session {
	return &model.Session{
		ID:            uuid.New().String(),
		UpstreamToken: "tok-test",
		UserID:        userID,
		Username:      "tester",
		ExpiresAt:     time.Now().Add(ttl),
	}
}

// ==================== 单元测试 ====================

func TestSessionRepoCreateAndGet(t *testing.T) {
	repo := NewSessionRepository(setupSessionTestDB(t))
	ctx := context.Background()

	session := newTestSession(1, time.Hour)
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("创建会话失败: %v", err)
	}

	found, err := repo.GetByID(ctx, session.ID)
	if err != nil {
		t.Fatalf("查询会话失败: %v", err)
	}
	if found.UserID != 1 || found.Username != "tester" {
		t.Errorf("查询结果不符: %+v", found)
	}
	if found.Expired() {
		t.Error("一小时有效期的会话不应过期")
	}
}

func TestSessionRepoGetMissing(t *testing.T) {
	repo := NewSessionRepository(setupSessionTestDB(t))

	_, err := repo.GetByID(context.Background(), uuid.New().String())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("不存在的会话应返回 ErrRecordNotFound, got %v", err)
	}
}

func TestSessionRepoDelete(t *testing.T) {
	repo := NewSessionRepository(setupSessionTestDB(t))
	ctx := context.Background()

	session := newTestSession(1, time.Hour)
	_ = repo.Create(ctx, session)

	if err := repo.Delete(ctx, session.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if _, err := repo.GetByID(ctx, session.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatal("删除后不应再查到")
	}

	// 重复删除幂等
	if err := repo.Delete(ctx, session.ID); err != nil {
		t.Fatalf("重复删除应幂等: %v", err)
	}
}

func TestSessionRepoDeleteByUserID(t *testing.T) {
	repo := NewSessionRepository(setupSessionTestDB(t))
	ctx := context.Background()

	// 同一用户两个会话 + 另一用户一个
	_ = repo.Create(ctx, newTestSession(7, time.Hour))
	_ = repo.Create(ctx, newTestSession(7, time.Hour))
	other := newTestSession(8, time.Hour)
	_ = repo.Create(ctx, other)

	if err := repo.DeleteByUserID(ctx, 7); err != nil {
		t.Fatalf("按用户删除失败: %v", err)
	}

	count, err := repo.CountActive(ctx)
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if count != 1 {
		t.Errorf("剩余活跃会话 = %d, want 1", count)
	}
	if _, err := repo.GetByID(ctx, other.ID); err != nil {
		t.Errorf("其他用户的会话不应受影响: %v", err)
	}
}

func TestSessionRepoDeleteExpired(t *testing.T) {
	repo := NewSessionRepository(setupSessionTestDB(t))
	ctx := context.Background()

	_ = repo.Create(ctx, newTestSession(1, -time.Minute)) // 已过期
	_ = repo.Create(ctx, newTestSession(2, -time.Hour))   // 已过期
	alive := newTestSession(3, time.Hour)
	_ = repo.Create(ctx, alive)

	count, err := repo.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("清理失败: %v", err)
	}
	if count != 2 {
		t.Errorf("清理条数 = %d, want 2", count)
	}
	if _, err := repo.GetByID(ctx, alive.ID); err != nil {
		t.Errorf("未过期会话不应被清理: %v", err)
	}
}
