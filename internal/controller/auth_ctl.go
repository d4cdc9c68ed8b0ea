package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/internal/middleware"
	"pos_admin_v1/internal/service"
)

type AuthController struct {
	authSvc *service.AuthService
}

func NewAuthController(authSvc *service.AuthService) *AuthController {
	return &AuthController{authSvc: authSvc}
}

// Login 登录
// @Summary 登录
// @Description 账号密码换会话，后续请求带 Authorization: Bearer {sessionId}
// @Tags Auth (鉴权模块)
// @Accept json
// @Produce json
// @Param body body dto.LoginReq true "账号密码"
// @Success 200 {object} dto.LoginResp "会话信息"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 401 {object} map[string]string "账号或密码错误"
// @Router /api/authentication/login [post]
func (ctl *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	resp, err := ctl.authSvc.Login(ctx.Request.Context(), &req)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Logout 登出
// @Summary 登出
// @Description 删除当前会话，幂等
// @Tags Auth (鉴权模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "登出成功"
// @Router /api/authentication/logout [post]
func (ctl *AuthController) Logout(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)
	if err := ctl.authSvc.Logout(ctx.Request.Context(), sessionID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "登出成功"})
}

// Me 当前会话信息
// @Summary 当前会话信息
// @Tags Auth (鉴权模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "会话信息"
// @Router /api/authentication/me [get]
func (ctl *AuthController) Me(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"userId":   middleware.GetUserID(ctx),
		"username": middleware.GetUsername(ctx),
	})
}
