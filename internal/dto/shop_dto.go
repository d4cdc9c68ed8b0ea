package dto

// ==================== 门店列表 ====================

// ShopListReq 门店列表请求
type ShopListReq struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
	Keyword  string `form:"keyword"`
}

// ShopView 门店展示行
type ShopView struct {
	ShopID      int64  `json:"shopId"`
	ShopName    string `json:"shopName"`
	Fullname    string `json:"fullname"`
	Phonenumber string `json:"phonenumber"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Status      int    `json:"status"`
	StatusText  string `json:"statusText"`
	ProductType string `json:"productType,omitempty"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	BankName    string `json:"bankName,omitempty"`
	BankCode    string `json:"bankCode,omitempty"`
	BankNum     string `json:"bankNum,omitempty"`
	QrcodeURL   string `json:"qrcodeUrl,omitempty"`
	ExpiredAt   string `json:"expiredAt,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// ShopListResp 门店列表响应
type ShopListResp struct {
	Items      []ShopView `json:"items"`
	TotalCount int        `json:"totalCount"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
	HasMore    bool       `json:"hasMore"`
}

// ==================== 创建/编辑门店 ====================

// ShopSaveReq 创建和编辑共用一套字段
// trial 为真时忽略传入的套餐和状态，强制试用档
type ShopSaveReq struct {
	ShopName    string `json:"shopName" binding:"required"`
	Fullname    string `json:"fullname" binding:"required"`
	Phonenumber string `json:"phonenumber" binding:"required"`
	Email       string `json:"email" binding:"required"`

	HouseNumber  string `json:"houseNumber" binding:"required"`
	WardCode     string `json:"wardCode" binding:"required"`
	WardName     string `json:"wardName"`
	ProvinceCode string `json:"provinceCode" binding:"required"`

	ProductID   int64  `json:"productId"`
	ProductType string `json:"productType"`
	Status      int    `json:"status"`
	Trial       bool   `json:"trial"`

	BankCode string `json:"bankCode"`
	BankNum  string `json:"bankNum"`

	ShopToken   string `json:"shopToken,omitempty"`
	SepayAPIKey string `json:"sepayApiKey,omitempty"`
}

// ==================== 即将到期 ====================

// ExpiringShopView 即将到期门店行
type ExpiringShopView struct {
	ShopID    int64  `json:"shopId"`
	ShopName  string `json:"shopName"`
	Fullname  string `json:"fullname"`
	ExpiredAt string `json:"expiredAt"`
	DaysLeft  int    `json:"daysLeft"`
}
