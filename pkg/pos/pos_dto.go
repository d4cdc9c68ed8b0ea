package pos

import "encoding/json"

// 上游 POS 平台 API 的数据结构定义
// 字段名与上游 JSON 保持一致，不做任何改写

// ==================== 订单 ====================

// Order 订单记录
type Order struct {
	OrderID       int64   `json:"orderId"`
	ShopID        int64   `json:"shopId"`
	ProductID     int64   `json:"productId"`
	ProductName   string  `json:"productName,omitempty"`
	UserID        int64   `json:"userId"`
	TotalPrice    float64 `json:"totalPrice"`
	PaymentMethod string  `json:"paymentMethod"` // "1" 现金, "2" 转账
	Status        int     `json:"status"`        // 0 待支付, 1 已支付, 2 已取消
	Discount      float64 `json:"discount"`
	CreatedAt     string  `json:"createdAt"`
	ExpiredAt     *string `json:"expiredAt,omitempty"`
	Note          string  `json:"note,omitempty"`
}

// ==================== 店铺 ====================

// Shop 店铺记录 (商户租户)
type Shop struct {
	ShopID      int64   `json:"shopId"`
	ShopName    string  `json:"shopName"`
	Fullname    string  `json:"fullname"`
	Phonenumber string  `json:"phonenumber"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"` // "门牌, 坊, 省" 逗号拼接
	Status      int     `json:"status"`            // 0 停用, 1 正常, 2 试用
	ProductType *string `json:"productType,omitempty"`
	ProductID   *int64  `json:"productId,omitempty"`
	ExpiredAt   *string `json:"expiredAt,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	BankName    *string `json:"bankName,omitempty"`
	BankCode    *string `json:"bankCode,omitempty"`
	BankNum     *string `json:"bankNum,omitempty"`
	ShopToken   *string `json:"shopToken,omitempty"`
	QrcodeURL   *string `json:"qrcodeUrl,omitempty"`
	SepayAPIKey *string `json:"sepayApiKey,omitempty"`
}

// ==================== 套餐 (产品) ====================

// Feature 套餐功能项
type Feature struct {
	FeatureID   int64  `json:"featureId"`
	FeatureName string `json:"featureName"`
}

// Product 订阅套餐
type Product struct {
	ProductID    int64     `json:"productId"`
	ProductName  string    `json:"productName"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	RequestLimit int64     `json:"requestLimit"`
	AccountLimit int64     `json:"accountLimit"`
	Discount     float64   `json:"discount"`
	Status       int       `json:"status"`
	QrcodeURL    string    `json:"qrcodeUrl,omitempty"`
	Duration     string    `json:"duration,omitempty"`
	Features     []Feature `json:"features,omitempty"`
}

// ==================== 促销 ====================

// Promotion 折扣规则
// 注意：上游的 type 字段历史上既有字符串 ("%"/"VNĐ") 也有整数 (0/1)，
// 这里保留原文，规范化在 service 层统一处理
type Promotion struct {
	PromotionID   int64           `json:"promotionId"`
	PromotionName string          `json:"promotionName"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	Value         float64         `json:"value"`
	Type          json.RawMessage `json:"type"`
	Status        int             `json:"status"` // 1 生效
	ProductIDs    []int64         `json:"productIds,omitempty"`
}

// ==================== 用户 ====================

// User 后台账号
type User struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Status      int    `json:"status"` // 1 在职
	Role        int    `json:"role"`   // 1 admin, 2 staff, 其他 support
	Avatar      string `json:"avatar,omitempty"`
}

// ==================== 报表 ====================

// ReportBucket 单个统计窗口 (今日/本周/本月)
type ReportBucket struct {
	NewShops    int64   `json:"newShops"`
	ActiveShops int64   `json:"activeShops"`
	Revenue     float64 `json:"revenue"`
	PremiumSold int64   `json:"premiumSold"`
}

// ReportData 仪表盘汇总数据
type ReportData struct {
	Today ReportBucket `json:"today"`
	Week  ReportBucket `json:"week"`
	Month ReportBucket `json:"month"`
}

// MonthlyOrderSummary 本月交易汇总
type MonthlyOrderSummary struct {
	TotalTransactions   int64   `json:"totalTransactions"`
	SuccessTransactions int64   `json:"successTransactions"`
	FailedTransactions  int64   `json:"failedTransactions"`
	Revenue             float64 `json:"revenue"`
}

// MonthlyRevenuePoint 月度营收曲线上的一个点
type MonthlyRevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// PackageShopCount 按套餐分布的店铺数
type PackageShopCount struct {
	PackageName string `json:"packageName"`
	Count       int64  `json:"count"`
}

// NewVsRenewalPoint 新购/续费对比
type NewVsRenewalPoint struct {
	Month    string `json:"month"`
	NewShops int64  `json:"newShops"`
	Renewals int64  `json:"renewals"`
}

// ProvinceShopCount 按省份分布的店铺数
type ProvinceShopCount struct {
	Province string `json:"province"`
	Count    int64  `json:"count"`
}

// ==================== 支付 ====================

// VietQRResult Sepay 返回的收款二维码
// 注意：该接口不走 {success, data} 外壳，字段在顶层
type VietQRResult struct {
	Success bool    `json:"success"`
	URL     string  `json:"url"`
	OrderID int64   `json:"orderId"`
	Amount  float64 `json:"amount"`
}

// ==================== 鉴权 ====================

// LoginResult 上游登录结果 (data 部分)
type LoginResult struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}
