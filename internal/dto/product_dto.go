package dto

// ==================== 套餐 ====================

// ProductView 套餐展示行
type ProductView struct {
	ProductID    int64         `json:"productId"`
	ProductName  string        `json:"productName"`
	Description  string        `json:"description,omitempty"`
	Price        float64       `json:"price"`
	PriceText    string        `json:"priceText"`
	RequestLimit int64         `json:"requestLimit"`
	AccountLimit int64         `json:"accountLimit"`
	Discount     float64       `json:"discount"`
	Status       int           `json:"status"`
	Duration     string        `json:"duration,omitempty"`
	QrcodeURL    string        `json:"qrcodeUrl,omitempty"`
	Features     []FeatureView `json:"features"`
}

// FeatureView 功能条目
type FeatureView struct {
	FeatureID   int64  `json:"featureId"`
	FeatureName string `json:"featureName"`
}

// ProductSaveReq 创建和编辑共用
type ProductSaveReq struct {
	ProductName  string  `json:"productName" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required"`
	RequestLimit int64   `json:"requestLimit"`
	AccountLimit int64   `json:"accountLimit"`
	Discount     float64 `json:"discount"`
	Status       int     `json:"status"`
	Duration     string  `json:"duration" binding:"required"`
	FeatureIDs   []int64 `json:"featureIds"`
}
