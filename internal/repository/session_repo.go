package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"pos_admin_v1/internal/model"
)

// ==================== 接口定义 ====================

// SessionRepository 会话仓储接口
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID int64) error

	// DeleteExpired 清理过期会话，返回清理条数
	DeleteExpired(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

// ==================== 仓储实现 ====================

// sessionRepo 会话仓储实现
type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepository 创建会话仓储
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Session{}, "id = ?", id).Error
}

func (r *sessionRepo) DeleteByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Delete(&model.Session{}, "user_id = ?", userID).Error
}

func (r *sessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.Session{})
	return result.RowsAffected, result.Error
}

func (r *sessionRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Session{}).
		Where("expires_at >= ?", time.Now()).
		Count(&count).Error
	return count, err
}
