package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/internal/service"
)

type OrderController struct {
	orderSvc *service.OrderService
}

func NewOrderController(orderSvc *service.OrderService) *OrderController {
	return &OrderController{orderSvc: orderSvc}
}

// List 订单列表
// @Summary 订单列表
// @Description 分页查询订单，已补齐店铺名、套餐名和格式化文案
// @Tags Order (订单模块)
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(10)
// @Success 200 {object} dto.OrderListResp "订单列表"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/orders [get]
func (ctl *OrderController) List(ctx *gin.Context) {
	var req dto.OrderListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	resp, err := ctl.orderSvc.List(ctx.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Create 创建订单
// @Summary 创建订单
// @Description 现金单直接落初始状态；转账单创建后返回 VietQR 收款码
// @Tags Order (订单模块)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.OrderCreateReq true "订单信息"
// @Success 200 {object} dto.OrderCreateResp "创建结果"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/orders [post]
func (ctl *OrderController) Create(ctx *gin.Context) {
	var req dto.OrderCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	resp, err := ctl.orderSvc.Create(ctx.Request.Context(), &req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// VietQR 收款二维码
// @Summary 收款二维码
// @Description 按订单号取 VietQR 收款码
// @Tags Order (订单模块)
// @Produce json
// @Security BearerAuth
// @Param orderId query int true "订单号"
// @Success 200 {object} dto.VietQRView "收款码"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/sepay/vietqr [get]
func (ctl *OrderController) VietQR(ctx *gin.Context) {
	orderID, err := strconv.ParseInt(ctx.Query("orderId"), 10, 64)
	if err != nil || orderID <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的订单号"})
		return
	}

	resp, err := ctl.orderSvc.VietQR(ctx.Request.Context(), orderID)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// MonthlySummary 本月交易汇总
// @Summary 本月交易汇总
// @Description 本月交易笔数、营收和成功/失败占比
// @Tags Order (订单模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrderSummaryResp "汇总数据"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/reports/monthly-order-summary [get]
func (ctl *OrderController) MonthlySummary(ctx *gin.Context) {
	resp, err := ctl.orderSvc.MonthlySummary(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
