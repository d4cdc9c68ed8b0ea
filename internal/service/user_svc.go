package service

import (
	"context"
	"fmt"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/pkg/pos"
	"pos_admin_v1/pkg/utils"
)

type UserService struct {
	client  *pos.Client
	storage *StorageService
}

// NewUserService 工厂方法
func NewUserService(client *pos.Client, storage *StorageService) *UserService {
	return &UserService{client: client, storage: storage}
}

// ==================== 员工列表 ====================

// List 分页拉后台账号
func (s *UserService) List(ctx context.Context, page, pageSize int) (*dto.UserListResp, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = OrderPageSize
	}

	users, meta, err := s.client.ListUsers(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserView, 0, len(users))
	for _, u := range users {
		items = append(items, dto.UserView{
			UserID:      u.UserID,
			Username:    u.Username,
			FullName:    u.FullName,
			Email:       u.Email,
			PhoneNumber: u.PhoneNumber,
			Status:      u.Status,
			StatusText:  utils.UserStatusText(u.Status),
			Role:        u.Role,
			RoleName:    utils.UserRoleName(u.Role),
			Avatar:      u.Avatar,
		})
	}

	return &dto.UserListResp{
		Items:      items,
		TotalCount: meta.TotalCount,
		Page:       meta.Page,
		PageSize:   meta.PageSize,
		TotalPages: meta.TotalPages,
		HasMore:    meta.Page < meta.TotalPages,
	}, nil
}

// ==================== 创建/编辑 ====================

// Create 创建账号
func (s *UserService) Create(ctx context.Context, req *dto.UserCreateReq) error {
	payload := map[string]interface{}{
		"username":    req.Username,
		"password":    req.Password,
		"fullName":    req.FullName,
		"email":       req.Email,
		"phoneNumber": req.PhoneNumber,
		"role":        req.Role,
		"status":      req.Status,
	}
	return s.client.CreateUser(ctx, payload)
}

// Update 更新账号
// 头像先落对象存储，再把公开 URL 作为 avatar 字段下发给上游，
// 上游只存 URL，不经手文件本体
func (s *UserService) Update(ctx context.Context, userID int64, req *dto.UserUpdateReq, avatar []byte, avatarName, avatarType string) error {
	payload := map[string]interface{}{}
	if req.FullName != "" {
		payload["fullName"] = req.FullName
	}
	if req.Email != "" {
		payload["email"] = req.Email
	}
	if req.PhoneNumber != "" {
		payload["phoneNumber"] = req.PhoneNumber
	}
	if req.Role != 0 {
		payload["role"] = req.Role
	}
	if req.Status != nil {
		payload["status"] = *req.Status
	}

	if len(avatar) > 0 {
		url, err := s.storage.Upload(ctx, avatar, avatarName, avatarType)
		if err != nil {
			return fmt.Errorf("头像上传失败: %w", err)
		}
		payload["avatar"] = url
	}

	if len(payload) == 0 {
		return fmt.Errorf("没有可更新的字段")
	}
	return s.client.UpdateUser(ctx, userID, payload)
}
