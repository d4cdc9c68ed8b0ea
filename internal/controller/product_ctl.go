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

type ProductController struct {
	productSvc *service.ProductService
}

func NewProductController(productSvc *service.ProductService) *ProductController {
	return &ProductController{productSvc: productSvc}
}

// List 套餐列表
// @Summary 套餐列表
// @Description 全量返回，带 ?productId= 时返回单个套餐
// @Tags Product (套餐模块)
// @Produce json
// @Security BearerAuth
// @Param productId query int false "按 ID 查单个套餐"
// @Success 200 {array} dto.ProductView "套餐列表"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/products [get]
func (ctl *ProductController) List(ctx *gin.Context) {
	if productIDStr := ctx.Query("productId"); productIDStr != "" {
		productID, err := strconv.ParseInt(productIDStr, 10, 64)
		if err != nil || productID <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的套餐 ID"})
			return
		}
		view, err := ctl.productSvc.Get(ctx.Request.Context(), productID)
		if err != nil {
			if errors.Is(err, pos.ErrNotFound) {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "套餐不存在"})
				return
			}
			ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, view)
		return
	}

	resp, err := ctl.productSvc.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Create 创建套餐
// @Summary 创建套餐
// @Tags Product (套餐模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ProductSaveReq true "套餐信息"
// @Success 200 {object} map[string]string "创建成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/products [post]
func (ctl *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	if err := ctl.productSvc.Create(ctx.Request.Context(), &req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "创建成功"})
}

// Update 更新套餐
// @Summary 更新套餐
// @Tags Product (套餐模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "套餐 ID"
// @Param body body dto.ProductSaveReq true "套餐信息"
// @Success 200 {object} map[string]string "更新成功"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/products/{id} [put]
func (ctl *ProductController) Update(ctx *gin.Context) {
	productID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的套餐 ID"})
		return
	}

	var req dto.ProductSaveReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	if err := ctl.productSvc.Update(ctx.Request.Context(), productID, &req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// Features 功能项字典
// @Summary 功能项字典
// @Description 创建/编辑套餐时的功能勾选列表
// @Tags Product (套餐模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FeatureView "功能项"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/features [get]
func (ctl *ProductController) Features(ctx *gin.Context) {
	resp, err := ctl.productSvc.Features(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
