package dto

// ==================== 促销 ====================

// 促销类型在上游有字符串和数字两套表示，网关统一成数字：
// 0 按百分比折扣，1 按固定金额 (VNĐ) 减免
const (
	PromotionTypePercent = 0
	PromotionTypeAmount  = 1
)

// PromotionView 促销展示行
type PromotionView struct {
	PromotionID   int64   `json:"promotionId"`
	PromotionName string  `json:"promotionName"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Value         float64 `json:"value"`
	ValueText     string  `json:"valueText"`
	Type          int     `json:"type"`
	Status        int     `json:"status"`
	StatusText    string  `json:"statusText"`
	ProductIDs    []int64 `json:"productIds"`
}

// PromotionSaveReq 创建和编辑共用
type PromotionSaveReq struct {
	PromotionName string  `json:"promotionName" binding:"required"`
	StartDate     string  `json:"startDate" binding:"required"`
	EndDate       string  `json:"endDate" binding:"required"`
	Value         float64 `json:"value" binding:"required"`
	Type          int     `json:"type"`
	Status        int     `json:"status"`
	ProductIDs    []int64 `json:"productIds"`
}
