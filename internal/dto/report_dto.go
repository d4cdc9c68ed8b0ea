package dto

// ==================== 报表 ====================

// ReportBucketView 单个统计窗口 (今日/本周/本月)，金额带格式化文案
type ReportBucketView struct {
	NewShops    int64   `json:"newShops"`
	ActiveShops int64   `json:"activeShops"`
	Revenue     float64 `json:"revenue"`
	RevenueText string  `json:"revenueText"`
	PremiumSold int64   `json:"premiumSold"`
}

// ReportOverviewResp 仪表盘总览三宫格
type ReportOverviewResp struct {
	Today       ReportBucketView `json:"today"`
	Week        ReportBucketView `json:"week"`
	Month       ReportBucketView `json:"month"`
	GeneratedAt string           `json:"generatedAt"`
	FromCache   bool             `json:"fromCache"`
}

// ChartPoint 通用图表点位
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Text  string  `json:"text,omitempty"`
}

// MonthlyRevenueResp 月度营收折线
type MonthlyRevenueResp struct {
	Points      []ChartPoint `json:"points"`
	Total       float64      `json:"total"`
	TotalText   string       `json:"totalText"`
	GeneratedAt string       `json:"generatedAt"`
	FromCache   bool         `json:"fromCache"`
}

// DistributionResp 占比类图表 (按套餐/按省)
type DistributionResp struct {
	Points      []ChartPoint `json:"points"`
	GeneratedAt string       `json:"generatedAt"`
	FromCache   bool         `json:"fromCache"`
}

// NewVsRenewalResp 新签/续费对比柱状图
type NewVsRenewalResp struct {
	Months      []string `json:"months"`
	NewShops    []int64  `json:"newShops"`
	Renewals    []int64  `json:"renewals"`
	GeneratedAt string   `json:"generatedAt"`
	FromCache   bool     `json:"fromCache"`
}
