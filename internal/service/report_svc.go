package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/pkg/pos"
	"pos_admin_v1/pkg/utils"
)

// 业务常量
const (
	// ReportCacheTTL 报表缓存时长，仪表盘刷新频率远高于数据变化频率
	ReportCacheTTL = 3 * time.Minute

	// ReportRefreshCooldown 手动刷新冷却，防止狂点刷新打爆上游
	ReportRefreshCooldown = 30 * time.Second

	reportCachePrefix = "report:"
)

// ErrRefreshCooldown 刷新过于频繁
var ErrRefreshCooldown = fmt.Errorf("刷新过于频繁，请稍后再试")

type ReportService struct {
	client *pos.Client

	mu          sync.Mutex
	lastRefresh time.Time
}

// NewReportService 工厂方法
func NewReportService(client *pos.Client) *ReportService {
	return &ReportService{client: client}
}

// ==================== 缓存代理 ====================

// cachedReport 取缓存命中的报表，反序列化失败视为未命中
func cachedReport[T any](key string) (*T, bool) {
	raw, ok := utils.GetCache(reportCachePrefix + key)
	if !ok {
		return nil, false
	}
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		log.Printf("报表缓存 %s 反序列化失败: %v", key, err)
		utils.DeleteCache(reportCachePrefix + key)
		return nil, false
	}
	return &value, true
}

func storeReport[T any](key string, value *T) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("报表缓存 %s 序列化失败: %v", key, err)
		return
	}
	utils.SetCache(reportCachePrefix+key, string(raw), ReportCacheTTL)
}

// Refresh 手动刷新：清空报表缓存，带冷却
func (s *ReportService) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if since := time.Since(s.lastRefresh); since < ReportRefreshCooldown {
		return ErrRefreshCooldown
	}
	s.lastRefresh = time.Now()
	utils.DeleteCachePrefix(reportCachePrefix)
	return nil
}

// Warm 预热所有报表缓存，定时任务调用
func (s *ReportService) Warm(ctx context.Context) {
	if _, err := s.Overview(ctx); err != nil {
		log.Printf("预热仪表盘总览失败: %v", err)
	}
	if _, err := s.MonthlyRevenue(ctx); err != nil {
		log.Printf("预热月度营收失败: %v", err)
	}
	if _, err := s.ShopByPackage(ctx); err != nil {
		log.Printf("预热套餐分布失败: %v", err)
	}
	if _, err := s.NewVsRenewal(ctx); err != nil {
		log.Printf("预热新签续费对比失败: %v", err)
	}
	if _, err := s.ShopByProvince(ctx); err != nil {
		log.Printf("预热省份分布失败: %v", err)
	}
}

// ==================== 仪表盘总览 ====================

// Overview 今日/本周/本月三窗口汇总
func (s *ReportService) Overview(ctx context.Context) (*dto.ReportOverviewResp, error) {
	if cached, ok := cachedReport[dto.ReportOverviewResp]("overview"); ok {
		cached.FromCache = true
		return cached, nil
	}

	data, err := s.client.GetReportData(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReportOverviewResp{
		Today:       toBucketView(data.Today),
		Week:        toBucketView(data.Week),
		Month:       toBucketView(data.Month),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}
	storeReport("overview", resp)
	return resp, nil
}

func toBucketView(b pos.ReportBucket) dto.ReportBucketView {
	return dto.ReportBucketView{
		NewShops:    b.NewShops,
		ActiveShops: b.ActiveShops,
		Revenue:     b.Revenue,
		RevenueText: utils.FormatCurrency(b.Revenue),
		PremiumSold: b.PremiumSold,
	}
}

// ==================== 月度营收 ====================

// MonthlyRevenue 月度营收折线，总和用 decimal 累加避免浮点误差
func (s *ReportService) MonthlyRevenue(ctx context.Context) (*dto.MonthlyRevenueResp, error) {
	if cached, ok := cachedReport[dto.MonthlyRevenueResp]("monthly-revenue"); ok {
		cached.FromCache = true
		return cached, nil
	}

	points, err := s.client.MonthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	chart := make([]dto.ChartPoint, 0, len(points))
	for _, p := range points {
		total = total.Add(decimal.NewFromFloat(p.Revenue))
		chart = append(chart, dto.ChartPoint{
			Label: p.Month,
			Value: p.Revenue,
			Text:  utils.FormatCurrency(p.Revenue),
		})
	}

	totalFloat, _ := total.Float64()
	resp := &dto.MonthlyRevenueResp{
		Points:      chart,
		Total:       totalFloat,
		TotalText:   utils.FormatCurrency(totalFloat),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}
	storeReport("monthly-revenue", resp)
	return resp, nil
}

// ==================== 分布类图表 ====================

// ShopByPackage 按套餐分布
func (s *ReportService) ShopByPackage(ctx context.Context) (*dto.DistributionResp, error) {
	if cached, ok := cachedReport[dto.DistributionResp]("shop-by-package"); ok {
		cached.FromCache = true
		return cached, nil
	}

	counts, err := s.client.ShopByPackage(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}
	chart := make([]dto.ChartPoint, 0, len(counts))
	for _, c := range counts {
		chart = append(chart, dto.ChartPoint{
			Label: c.PackageName,
			Value: float64(c.Count),
			Text:  fmt.Sprintf("%.1f%%", utils.RatePercent(c.Count, total)),
		})
	}

	resp := &dto.DistributionResp{
		Points:      chart,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}
	storeReport("shop-by-package", resp)
	return resp, nil
}

// ShopByProvince 按省份分布
func (s *ReportService) ShopByProvince(ctx context.Context) (*dto.DistributionResp, error) {
	if cached, ok := cachedReport[dto.DistributionResp]("shop-by-province"); ok {
		cached.FromCache = true
		return cached, nil
	}

	counts, err := s.client.ShopByProvince(ctx)
	if err != nil {
		return nil, err
	}

	chart := make([]dto.ChartPoint, 0, len(counts))
	for _, c := range counts {
		chart = append(chart, dto.ChartPoint{
			Label: c.Province,
			Value: float64(c.Count),
		})
	}

	resp := &dto.DistributionResp{
		Points:      chart,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}
	storeReport("shop-by-province", resp)
	return resp, nil
}

// NewVsRenewal 新签/续费对比
func (s *ReportService) NewVsRenewal(ctx context.Context) (*dto.NewVsRenewalResp, error) {
	if cached, ok := cachedReport[dto.NewVsRenewalResp]("new-vs-renewal"); ok {
		cached.FromCache = true
		return cached, nil
	}

	points, err := s.client.ShopNewVsRenewal(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.NewVsRenewalResp{
		Months:      make([]string, 0, len(points)),
		NewShops:    make([]int64, 0, len(points)),
		Renewals:    make([]int64, 0, len(points)),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}
	for _, p := range points {
		resp.Months = append(resp.Months, p.Month)
		resp.NewShops = append(resp.NewShops, p.NewShops)
		resp.Renewals = append(resp.Renewals, p.Renewals)
	}
	storeReport("new-vs-renewal", resp)
	return resp, nil
}
