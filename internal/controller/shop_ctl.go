package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/internal/service"
	"pos_admin_v1/pkg/pos"
)

type ShopController struct {
	shopSvc *service.ShopService
}

func NewShopController(shopSvc *service.ShopService) *ShopController {
	return &ShopController{shopSvc: shopSvc}
}

// List 门店列表
// @Summary 门店列表
// @Description 分页查询门店，带 ?shopId= 时返回单店详情
// @Tags Shop (门店模块)
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(10)
// @Param shopId query int false "按 ID 查单店"
// @Success 200 {object} dto.ShopListResp "门店列表"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/shops [get]
func (ctl *ShopController) List(ctx *gin.Context) {
	// 兼容 ?shopId= 单店查询
	if shopIDStr := ctx.Query("shopId"); shopIDStr != "" {
		shopID, err := strconv.ParseInt(shopIDStr, 10, 64)
		if err != nil || shopID <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的门店 ID"})
			return
		}
		view, err := ctl.shopSvc.Get(ctx.Request.Context(), shopID)
		if err != nil {
			if errors.Is(err, pos.ErrNotFound) {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "门店不存在"})
				return
			}
			ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, view)
		return
	}

	var req dto.ShopListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	resp, err := ctl.shopSvc.List(ctx.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Create 创建门店
// @Summary 创建门店
// @Description trial=true 时强制试用档，忽略传入的套餐和状态
// @Tags Shop (门店模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ShopSaveReq true "门店信息"
// @Success 200 {object} map[string]string "创建成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/shops [post]
func (ctl *ShopController) Create(ctx *gin.Context) {
	var req dto.ShopSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	if err := ctl.shopSvc.Create(ctx.Request.Context(), &req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "创建成功"})
}

// Update 更新门店
// @Summary 更新门店
// @Tags Shop (门店模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "门店 ID"
// @Param body body dto.ShopSaveReq true "门店信息"
// @Success 200 {object} map[string]string "更新成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/shops/{id} [put]
func (ctl *ShopController) Update(ctx *gin.Context) {
	shopID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || shopID <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的门店 ID"})
		return
	}

	var req dto.ShopSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	if err := ctl.shopSvc.Update(ctx.Request.Context(), shopID, &req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// Expiring 即将到期门店
// @Summary 即将到期门店
// @Description 按剩余天数取 Top N，仪表盘提醒卡片用
// @Tags Shop (门店模块)
// @Produce json
// @Security BearerAuth
// @Param top query int false "条数" default(5)
// @Success 200 {array} dto.ExpiringShopView "到期门店"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/shops/expiring [get]
func (ctl *ShopController) Expiring(ctx *gin.Context) {
	top, _ := strconv.Atoi(ctx.DefaultQuery("top", "5"))

	resp, err := ctl.shopSvc.Expiring(ctx.Request.Context(), top)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
