package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/internal/refdata"
	"pos_admin_v1/pkg/pos"
	"pos_admin_v1/pkg/utils"
)

// 业务常量
const (
	// TrialProductID 试用档固定绑定的套餐
	TrialProductID = 1

	// ShopStatusTrial 试用状态码
	ShopStatusTrial = 2

	// ExpiringTopDefault 到期提醒默认条数
	ExpiringTopDefault = 5
)

type ShopService struct {
	client *pos.Client
}

// NewShopService 工厂方法
func NewShopService(client *pos.Client) *ShopService {
	return &ShopService{client: client}
}

// ==================== 店铺列表 ====================

// List 分页拉店铺
func (s *ShopService) List(ctx context.Context, page, pageSize int) (*dto.ShopListResp, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = OrderPageSize
	}

	shops, meta, err := s.client.ListShops(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ShopView, 0, len(shops))
	for _, shop := range shops {
		items = append(items, s.toView(ctx, &shop))
	}

	return &dto.ShopListResp{
		Items:      items,
		TotalCount: meta.TotalCount,
		Page:       meta.Page,
		PageSize:   meta.PageSize,
		TotalPages: meta.TotalPages,
		HasMore:    meta.Page < meta.TotalPages,
	}, nil
}

// Get 店铺详情
func (s *ShopService) Get(ctx context.Context, shopID int64) (*dto.ShopView, error) {
	shop, err := s.client.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	view := s.toView(ctx, shop)
	return &view, nil
}

// toView 店铺记录 → 展示行，套餐名走缓存补查
func (s *ShopService) toView(ctx context.Context, shop *pos.Shop) dto.ShopView {
	view := dto.ShopView{
		ShopID:      shop.ShopID,
		ShopName:    shop.ShopName,
		Fullname:    shop.Fullname,
		Phonenumber: shop.Phonenumber,
		Status:      shop.Status,
		StatusText:  utils.ShopStatusText(shop.Status),
		CreatedAt:   shop.CreatedAt,
	}
	if shop.Email != nil {
		view.Email = *shop.Email
	}
	if shop.Address != nil {
		view.Address = *shop.Address
	}
	if shop.ProductType != nil {
		view.ProductType = *shop.ProductType
	}
	if shop.BankName != nil {
		view.BankName = *shop.BankName
	}
	if shop.BankCode != nil {
		view.BankCode = *shop.BankCode
	}
	if shop.BankNum != nil {
		view.BankNum = *shop.BankNum
	}
	if shop.QrcodeURL != nil {
		view.QrcodeURL = *shop.QrcodeURL
	}
	if shop.ExpiredAt != nil {
		view.ExpiredAt = *shop.ExpiredAt
	}
	if shop.ProductID != nil {
		view.ProductID = *shop.ProductID
		view.ProductName = s.productName(ctx, *shop.ProductID)
	}
	return view
}

// productName 套餐名，带缓存，查不到给占位名
func (s *ShopService) productName(ctx context.Context, productID int64) string {
	if productID == 0 {
		return ""
	}
	if name, ok := utils.GetCache(productNameKey(productID)); ok {
		return name
	}
	product, err := s.client.GetProduct(ctx, productID)
	if err != nil {
		log.Printf("查套餐 %d 失败: %v", productID, err)
		return fmt.Sprintf("Product %d", productID)
	}
	utils.SetCache(productNameKey(productID), product.ProductName, nameCacheTTL)
	return product.ProductName
}

// ==================== 创建/编辑 ====================

// Create 创建店铺
// trial 为真强制试用档：状态 2 + 固定试用套餐，忽略请求里的套餐和状态
func (s *ShopService) Create(ctx context.Context, req *dto.ShopSaveReq) error {
	payload, err := s.buildPayload(req)
	if err != nil {
		return err
	}
	return s.client.CreateShop(ctx, payload)
}

// Update 更新店铺
func (s *ShopService) Update(ctx context.Context, shopID int64, req *dto.ShopSaveReq) error {
	payload, err := s.buildPayload(req)
	if err != nil {
		return err
	}
	return s.client.UpdateShop(ctx, shopID, payload)
}

func (s *ShopService) buildPayload(req *dto.ShopSaveReq) (map[string]interface{}, error) {
	address, err := buildAddressFromCodes(req.HouseNumber, req.WardCode, req.WardName, req.ProvinceCode)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"shopName":    req.ShopName,
		"fullname":    req.Fullname,
		"phonenumber": req.Phonenumber,
		"email":       req.Email,
		"address":     address,
	}

	if req.Trial {
		payload["status"] = ShopStatusTrial
		payload["productId"] = TrialProductID
	} else {
		payload["status"] = req.Status
		if req.ProductID != 0 {
			payload["productId"] = req.ProductID
		}
		if req.ProductType != "" {
			payload["productType"] = req.ProductType
		}
	}

	if req.BankCode != "" {
		bank := refdata.FindBankByBin(req.BankCode)
		if bank == nil {
			return nil, fmt.Errorf("银行编码无效: %s", req.BankCode)
		}
		payload["bankCode"] = bank.Bin
		payload["bankName"] = bank.Name
		payload["bankNum"] = req.BankNum
	}
	if req.ShopToken != "" {
		payload["shopToken"] = req.ShopToken
	}
	if req.SepayAPIKey != "" {
		payload["sepayApiKey"] = req.SepayAPIKey
	}
	return payload, nil
}

// ==================== 到期提醒 ====================

// Expiring 即将到期店铺 Top N，按剩余天数升序
func (s *ShopService) Expiring(ctx context.Context, top int) ([]dto.ExpiringShopView, error) {
	if top <= 0 {
		top = ExpiringTopDefault
	}

	shops, err := s.client.ExpiringShops(ctx, top)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]dto.ExpiringShopView, 0, len(shops))
	for _, shop := range shops {
		view := dto.ExpiringShopView{
			ShopID:   shop.ShopID,
			ShopName: shop.ShopName,
			Fullname: shop.Fullname,
		}
		if shop.ExpiredAt != nil {
			view.ExpiredAt = *shop.ExpiredAt
			view.DaysLeft = daysUntil(now, *shop.ExpiredAt)
		}
		views = append(views, view)
	}
	return views, nil
}

// daysUntil 剩余天数，已过期返回 0，解析不了返回 -1
func daysUntil(now time.Time, expiredAt string) int {
	t, err := parseUpstreamTime(expiredAt)
	if err != nil {
		return -1
	}
	if !t.After(now) {
		return 0
	}
	return int(t.Sub(now).Hours() / 24)
}

// parseUpstreamTime 上游时间字段有带时区和不带时区两种写法
func parseUpstreamTime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析时间: %s", strconv.Quote(value))
}
