package dto

// ==================== 订单列表 ====================

// OrderListReq 订单列表请求
type OrderListReq struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=10"`
}

// OrderView 订单展示行
// 原始字段之外补齐关联名称和格式化文案，表格直接渲染
type OrderView struct {
	OrderID       int64   `json:"orderId"`
	ShopID        int64   `json:"shopId"`
	ShopName      string  `json:"shopName"`
	ShopOwner     string  `json:"shopOwner"`
	ProductID     int64   `json:"productId"`
	ProductName   string  `json:"productName"`
	TotalPrice    float64 `json:"totalPrice"`
	AmountText    string  `json:"amountText"`
	Discount      float64 `json:"discount"`
	DiscountText  string  `json:"discountText"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentText   string  `json:"paymentText"`
	Status        int     `json:"status"`
	StatusText    string  `json:"statusText"`
	CreatedAt     string  `json:"createdAt"`
	Note          string  `json:"note,omitempty"`
}

// OrderListResp 订单列表响应
type OrderListResp struct {
	Items      []OrderView `json:"items"`
	TotalCount int         `json:"totalCount"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
	HasMore    bool        `json:"hasMore"`
}

// ==================== 创建订单 ====================

// OrderCreateReq 创建订单请求
// 地址由门牌/坊/省三段在服务端组装，不再信任前端拼好的字符串
type OrderCreateReq struct {
	ShopID        int64   `json:"shopId" binding:"required"`
	ProductID     int64   `json:"productId" binding:"required"`
	UserID        int64   `json:"userId"`
	TotalPrice    float64 `json:"totalPrice" binding:"required"`
	PaymentMethod int     `json:"paymentMethod" binding:"required"` // 1 现金, 2 转账
	Discount      float64 `json:"discount"`
	Note          string  `json:"note"`

	// 买家信息
	Fullname    string `json:"fullname" binding:"required"`
	Phonenumber string `json:"phonenumber" binding:"required"`
	Email       string `json:"email" binding:"required"`
	ShopName    string `json:"shopName"`

	// 地址三段
	HouseNumber  string `json:"houseNumber" binding:"required"`
	WardCode     string `json:"wardCode" binding:"required"`
	WardName     string `json:"wardName"`
	ProvinceCode string `json:"provinceCode" binding:"required"`

	// 银行信息，转账时必填
	BankCode string `json:"bankCode"`
	BankNum  string `json:"bankNum"`

	// 现金单直接带初始状态，转账单状态由支付回调决定
	Status *int `json:"status,omitempty"`

	// 可选技术字段
	ShopToken   string `json:"shopToken,omitempty"`
	QrcodeURL   string `json:"qrcodeUrl,omitempty"`
	SepayAPIKey string `json:"sepayApiKey,omitempty"`
}

// OrderCreateResp 创建订单响应
// 转账单同时带回收款二维码
type OrderCreateResp struct {
	OrderID int64       `json:"orderId"`
	QR      *VietQRView `json:"qr,omitempty"`
}

// VietQRView 收款二维码
type VietQRView struct {
	URL        string  `json:"url"`
	OrderID    int64   `json:"orderId"`
	Amount     float64 `json:"amount"`
	AmountText string  `json:"amountText"`
}

// ==================== 交易汇总 ====================

// OrderSummaryResp 本月交易汇总 + 成功/失败占比
type OrderSummaryResp struct {
	TotalTransactions   int64   `json:"totalTransactions"`
	SuccessTransactions int64   `json:"successTransactions"`
	FailedTransactions  int64   `json:"failedTransactions"`
	Revenue             float64 `json:"revenue"`
	RevenueText         string  `json:"revenueText"`
	SuccessRate         float64 `json:"successRate"`
	FailureRate         float64 `json:"failureRate"`
}
