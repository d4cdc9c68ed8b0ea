package controller

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/internal/service"
)

// 业务常量
const (
	// maxAvatarSize 头像大小上限 5MB
	maxAvatarSize = 5 << 20
)

type UserController struct {
	userSvc *service.UserService
}

func NewUserController(userSvc *service.UserService) *UserController {
	return &UserController{userSvc: userSvc}
}

// List 员工列表
// @Summary 员工列表
// @Description 分页查询后台账号，带角色和状态文案
// @Tags User (员工模块)
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(10)
// @Success 200 {object} dto.UserListResp "员工列表"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/users [get]
func (ctl *UserController) List(ctx *gin.Context) {
	var req dto.UserListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	resp, err := ctl.userSvc.List(ctx.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Create 创建员工
// @Summary 创建员工
// @Tags User (员工模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UserCreateReq true "员工信息"
// @Success 200 {object} map[string]string "创建成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/users [post]
func (ctl *UserController) Create(ctx *gin.Context) {
	var req dto.UserCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	if err := ctl.userSvc.Create(ctx.Request.Context(), &req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "创建成功"})
}

// Update 更新员工
// @Summary 更新员工
// @Description multipart 表单，头像字段名 avatar，先落对象存储再把 URL 下发上游
// @Tags User (员工模块)
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "员工 ID"
// @Param avatar formData file false "头像文件"
// @Success 200 {object} map[string]string "更新成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/users/{id} [put]
func (ctl *UserController) Update(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的员工 ID"})
		return
	}

	var req dto.UserUpdateReq
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	var (
		avatarData []byte
		avatarName string
		avatarType string
	)
	if fileHeader, err := ctx.FormFile("avatar"); err == nil {
		if fileHeader.Size > maxAvatarSize {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "头像不能超过 5MB"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "读取头像失败: " + err.Error()})
			return
		}
		defer file.Close()

		avatarData, err = io.ReadAll(file)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "读取头像失败: " + err.Error()})
			return
		}
		avatarName = fileHeader.Filename
		avatarType = fileHeader.Header.Get("Content-Type")
	}

	if err := ctl.userSvc.Update(ctx.Request.Context(), userID, &req, avatarData, avatarName, avatarType); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}
