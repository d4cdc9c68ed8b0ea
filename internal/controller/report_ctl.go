package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pos_admin_v1/internal/service"
)

type ReportController struct {
	reportSvc *service.ReportService
}

func NewReportController(reportSvc *service.ReportService) *ReportController {
	return &ReportController{reportSvc: reportSvc}
}

// Overview 仪表盘总览
// @Summary 仪表盘总览
// @Description 今日/本周/本月三窗口汇总，短 TTL 缓存
// @Tags Report (报表模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ReportOverviewResp "总览数据"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/reports/get-report-data [get]
func (ctl *ReportController) Overview(ctx *gin.Context) {
	resp, err := ctl.reportSvc.Overview(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// MonthlyRevenue 月度营收
// @Summary 月度营收折线
// @Tags Report (报表模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MonthlyRevenueResp "营收曲线"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/reports/monthly-revenue [get]
func (ctl *ReportController) MonthlyRevenue(ctx *gin.Context) {
	resp, err := ctl.reportSvc.MonthlyRevenue(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ShopByPackage 按套餐分布
// @Summary 门店按套餐分布
// @Tags Report (报表模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DistributionResp "分布数据"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/reports/shop-by-package [get]
func (ctl *ReportController) ShopByPackage(ctx *gin.Context) {
	resp, err := ctl.reportSvc.ShopByPackage(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// NewVsRenewal 新签/续费对比
// @Summary 新签/续费对比
// @Tags Report (报表模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.NewVsRenewalResp "对比数据"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/reports/shop-new-vs-renewal [get]
func (ctl *ReportController) NewVsRenewal(ctx *gin.Context) {
	resp, err := ctl.reportSvc.NewVsRenewal(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ShopByProvince 按省份分布
// @Summary 门店按省份分布
// @Tags Report (报表模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DistributionResp "分布数据"
// @Failure 502 {object} map[string]string "上游错误"
// @Router /api/reports/shop-by-province [get]
func (ctl *ReportController) ShopByProvince(ctx *gin.Context) {
	resp, err := ctl.reportSvc.ShopByProvince(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Refresh 手动刷新报表缓存
// @Summary 手动刷新报表缓存
// @Description 清空报表缓存，带 30 秒冷却
// @Tags Report (报表模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "刷新成功"
// @Failure 429 {object} map[string]string "冷却中"
// @Router /api/reports/refresh [post]
func (ctl *ReportController) Refresh(ctx *gin.Context) {
	if err := ctl.reportSvc.Refresh(); err != nil {
		if errors.Is(err, service.ErrRefreshCooldown) {
			ctx.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "刷新成功"})
}
