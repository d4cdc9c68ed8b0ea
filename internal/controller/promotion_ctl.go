package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/internal/service"
)

type PromotionController struct {
	promotionSvc *service.PromotionService
}

func NewPromotionController(promotionSvc *service.PromotionService) *PromotionController {
	return &PromotionController{promotionSvc: promotionSvc}
}

// List 促销列表
// @Summary 促销列表
// @Description 全量返回，type 已统一成数字 (0 百分比, 1 固定金额)
// @Tags Promotion (促销模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.PromotionView "促销列表"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/promotions [get]
func (ctl *PromotionController) List(ctx *gin.Context) {
	resp, err := ctl.promotionSvc.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Create 创建促销
// @Summary 创建促销
// @Tags Promotion (促销模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.PromotionSaveReq true "促销信息"
// @Success 200 {object} map[string]string "创建成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/promotions [post]
func (ctl *PromotionController) Create(ctx *gin.Context) {
	var req dto.PromotionSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	if err := ctl.promotionSvc.Create(ctx.Request.Context(), &req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "创建成功"})
}

// Update 更新促销
// @Summary 更新促销
// @Tags Promotion (促销模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "促销 ID"
// @Param body body dto.PromotionSaveReq true "促销信息"
// @Success 200 {object} map[string]string "更新成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/promotions/{id} [put]
func (ctl *PromotionController) Update(ctx *gin.Context) {
	promotionID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || promotionID <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的促销 ID"})
		return
	}

	var req dto.PromotionSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	if err := ctl.promotionSvc.Update(ctx.Request.Context(), promotionID, &req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}
