package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"
	"time"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/internal/refdata"
	"pos_admin_v1/pkg/pos"
	"pos_admin_v1/pkg/utils"
)

// 业务常量
const (
	// OrderPageSize 订单列表固定页大小
	OrderPageSize = 10

	// enrichConcurrency 批量接口不可用时逐个补查的并发上限
	enrichConcurrency = 5

	// nameCacheTTL 店铺/套餐名称缓存时长
	nameCacheTTL = 5 * time.Minute
)

type OrderService struct {
	client *pos.Client
}

// NewOrderService 工厂方法
func NewOrderService(client *pos.Client) *OrderService {
	return &OrderService{client: client}
}

// ==================== 订单列表 ====================

// List 分页拉订单并补齐关联字段
// 上游订单只带 shopId/productId，表格要显示名称，
// 先走 ids 批量接口，上游不支持就并发逐个补查，单条失败用占位名兜底
func (s *OrderService) List(ctx context.Context, page, pageSize int) (*dto.OrderListResp, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = OrderPageSize
	}

	orders, meta, err := s.client.ListOrders(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	shopNames, shopOwners := s.resolveShops(ctx, collectShopIDs(orders))
	productNames := s.resolveProducts(ctx, collectProductIDs(orders))

	items := make([]dto.OrderView, 0, len(orders))
	for _, o := range orders {
		view := dto.OrderView{
			OrderID:       o.OrderID,
			ShopID:        o.ShopID,
			ShopName:      shopNames[o.ShopID],
			ShopOwner:     shopOwners[o.ShopID],
			ProductID:     o.ProductID,
			ProductName:   o.ProductName,
			TotalPrice:    o.TotalPrice,
			AmountText:    utils.FormatCurrency(o.TotalPrice),
			Discount:      o.Discount,
			DiscountText:  utils.FormatCurrency(o.Discount),
			PaymentMethod: o.PaymentMethod,
			PaymentText:   utils.PaymentMethodText(o.PaymentMethod),
			Status:        o.Status,
			StatusText:    utils.OrderStatusText(o.Status),
			CreatedAt:     o.CreatedAt,
			Note:          o.Note,
		}
		if view.ProductName == "" {
			view.ProductName = productNames[o.ProductID]
		}
		items = append(items, view)
	}

	return &dto.OrderListResp{
		Items:      items,
		TotalCount: meta.TotalCount,
		Page:       meta.Page,
		PageSize:   meta.PageSize,
		TotalPages: meta.TotalPages,
		HasMore:    meta.Page < meta.TotalPages,
	}, nil
}

// resolveShops 查店铺名和店主名，失败兜底 "Shop {id}"
func (s *OrderService) resolveShops(ctx context.Context, ids []int64) (map[int64]string, map[int64]string) {
	names := make(map[int64]string, len(ids))
	owners := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, owners
	}

	// 先吃缓存，避免翻页时对同一批店铺反复打上游
	missing := make([]int64, 0, len(ids))
	for _, id := range ids {
		name, ok1 := utils.GetCache(shopNameKey(id))
		owner, ok2 := utils.GetCache(shopOwnerKey(id))
		if ok1 && ok2 {
			names[id] = name
			owners[id] = owner
		} else {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return names, owners
	}

	shops, err := s.client.BatchShops(ctx, missing)
	if err != nil {
		if !errors.Is(err, pos.ErrBatchUnsupported) {
			log.Printf("批量查店铺失败: %v", err)
		}
		shops = s.fetchShopsOneByOne(ctx, missing)
	}

	found := make(map[int64]bool, len(shops))
	for _, shop := range shops {
		names[shop.ShopID] = shop.ShopName
		owners[shop.ShopID] = shop.Fullname
		found[shop.ShopID] = true
		utils.SetCache(shopNameKey(shop.ShopID), shop.ShopName, nameCacheTTL)
		utils.SetCache(shopOwnerKey(shop.ShopID), shop.Fullname, nameCacheTTL)
	}
	for _, id := range missing {
		if !found[id] {
			names[id] = fmt.Sprintf("Shop %d", id)
			owners[id] = ""
		}
	}
	return names, owners
}

// fetchShopsOneByOne 批量接口不可用时的降级路径，带并发上限
func (s *OrderService) fetchShopsOneByOne(ctx context.Context, ids []int64) []pos.Shop {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		sem   = make(chan struct{}, enrichConcurrency)
		shops = make([]pos.Shop, 0, len(ids))
	)
	for _, id := range ids {
		wg.Add(1)
		sem <- struct{}{}
		go func(id int64) {
			defer wg.Done()
			defer func() { <-sem }()

			shop, err := s.client.GetShop(ctx, id)
			if err != nil {
				log.Printf("补查店铺 %d 失败: %v", id, err)
				return
			}
			mu.Lock()
			shops = append(shops, *shop)
			mu.Unlock()
		}(id)
	}
	wg.Wait()
	return shops
}

// resolveProducts 查套餐名，失败兜底 "Product {id}"
func (s *OrderService) resolveProducts(ctx context.Context, ids []int64) map[int64]string {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names
	}

	missing := make([]int64, 0, len(ids))
	for _, id := range ids {
		if name, ok := utils.GetCache(productNameKey(id)); ok {
			names[id] = name
		} else {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return names
	}

	products, err := s.client.BatchProducts(ctx, missing)
	if err != nil {
		if !errors.Is(err, pos.ErrBatchUnsupported) {
			log.Printf("批量查套餐失败: %v", err)
		}
		products = s.fetchProductsOneByOne(ctx, missing)
	}

	found := make(map[int64]bool, len(products))
	for _, p := range products {
		names[p.ProductID] = p.ProductName
		found[p.ProductID] = true
		utils.SetCache(productNameKey(p.ProductID), p.ProductName, nameCacheTTL)
	}
	for _, id := range missing {
		if !found[id] {
			names[id] = fmt.Sprintf("Product %d", id)
		}
	}
	return names
}

func (s *OrderService) fetchProductsOneByOne(ctx context.Context, ids []int64) []pos.Product {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		sem      = make(chan struct{}, enrichConcurrency)
		products = make([]pos.Product, 0, len(ids))
	)
	for _, id := range ids {
		wg.Add(1)
		sem <- struct{}{}
		go func(id int64) {
			defer wg.Done()
			defer func() { <-sem }()

			p, err := s.client.GetProduct(ctx, id)
			if err != nil {
				log.Printf("补查套餐 %d 失败: %v", id, err)
				return
			}
			mu.Lock()
			products = append(products, *p)
			mu.Unlock()
		}(id)
	}
	wg.Wait()
	return products
}

func collectShopIDs(orders []pos.Order) []int64 {
	return uniqueIDs(orders, func(o pos.Order) int64 { return o.ShopID })
}

func collectProductIDs(orders []pos.Order) []int64 {
	// 订单自带 productName 的不用补查
	seen := make(map[int64]bool)
	ids := make([]int64, 0)
	for _, o := range orders {
		if o.ProductName != "" || o.ProductID == 0 || seen[o.ProductID] {
			continue
		}
		seen[o.ProductID] = true
		ids = append(ids, o.ProductID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func uniqueIDs(orders []pos.Order, pick func(pos.Order) int64) []int64 {
	seen := make(map[int64]bool)
	ids := make([]int64, 0)
	for _, o := range orders {
		id := pick(o)
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func shopNameKey(id int64) string    { return "name:shop:" + strconv.FormatInt(id, 10) }
func shopOwnerKey(id int64) string   { return "owner:shop:" + strconv.FormatInt(id, 10) }
func productNameKey(id int64) string { return "name:product:" + strconv.FormatInt(id, 10) }

// ==================== 创建订单 ====================

// Create 创建订单
// 现金单带初始状态直接落；转账单不带状态 (由支付回调推进)，
// 创建成功后顺手取 VietQR 收款码一起返回
func (s *OrderService) Create(ctx context.Context, req *dto.OrderCreateReq) (*dto.OrderCreateResp, error) {
	if req.PaymentMethod != 1 && req.PaymentMethod != 2 {
		return nil, fmt.Errorf("支付方式无效: %d", req.PaymentMethod)
	}
	if req.PaymentMethod == 2 {
		if req.BankCode == "" || req.BankNum == "" {
			return nil, fmt.Errorf("转账订单必须填写银行信息")
		}
		if refdata.FindBankByBin(req.BankCode) == nil {
			return nil, fmt.Errorf("银行编码无效: %s", req.BankCode)
		}
	}

	address, err := buildAddressFromCodes(req.HouseNumber, req.WardCode, req.WardName, req.ProvinceCode)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"shopId":        req.ShopID,
		"productId":     req.ProductID,
		"userId":        req.UserID,
		"totalPrice":    req.TotalPrice,
		"paymentMethod": strconv.Itoa(req.PaymentMethod),
		"discount":      req.Discount,
		"note":          req.Note,
		"fullname":      req.Fullname,
		"phonenumber":   req.Phonenumber,
		"email":         req.Email,
		"shopName":      req.ShopName,
		"address":       address,
	}
	if req.PaymentMethod == 2 {
		bank := refdata.FindBankByBin(req.BankCode)
		payload["bankCode"] = bank.Bin
		payload["bankName"] = bank.Name
		payload["bankNum"] = req.BankNum
	}
	// 状态字段只在现金单里下发，转账单的状态归支付回调管
	if req.PaymentMethod == 1 && req.Status != nil {
		payload["status"] = *req.Status
	}
	if req.ShopToken != "" {
		payload["shopToken"] = req.ShopToken
	}
	if req.QrcodeURL != "" {
		payload["qrcodeUrl"] = req.QrcodeURL
	}
	if req.SepayAPIKey != "" {
		payload["sepayApiKey"] = req.SepayAPIKey
	}

	order, err := s.client.CreateOrder(ctx, payload)
	if err != nil {
		return nil, err
	}

	resp := &dto.OrderCreateResp{OrderID: order.OrderID}
	if req.PaymentMethod == 2 {
		qr, err := s.VietQR(ctx, order.OrderID)
		if err != nil {
			// 订单已创建成功，二维码可以稍后重取，不让整个请求失败
			log.Printf("订单 %d 取收款码失败: %v", order.OrderID, err)
		} else {
			resp.QR = qr
		}
	}
	return resp, nil
}

// buildAddressFromCodes 行政区划编码 → "门牌, 坊, 省" 文本地址
func buildAddressFromCodes(houseNumber, wardCode, wardName, provinceCode string) (string, error) {
	province := refdata.FindProvince(provinceCode)
	if province == nil {
		return "", fmt.Errorf("省份编码无效: %s", provinceCode)
	}
	ward := refdata.FindWard(provinceCode, wardCode)
	name := wardName
	if ward != nil {
		name = ward.Name
	}
	if name == "" {
		return "", fmt.Errorf("坊/社编码无效: %s", wardCode)
	}
	return utils.BuildAddress(houseNumber, name, province.FullName), nil
}

// ==================== 收款码 ====================

// VietQR 取订单收款二维码
func (s *OrderService) VietQR(ctx context.Context, orderID int64) (*dto.VietQRView, error) {
	result, err := s.client.VietQR(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &dto.VietQRView{
		URL:        result.URL,
		OrderID:    result.OrderID,
		Amount:     result.Amount,
		AmountText: utils.FormatCurrency(result.Amount),
	}, nil
}

// ==================== 交易汇总 ====================

// MonthlySummary 本月交易汇总，附成功/失败占比
func (s *OrderService) MonthlySummary(ctx context.Context) (*dto.OrderSummaryResp, error) {
	summary, err := s.client.MonthlyOrderSummary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.OrderSummaryResp{
		TotalTransactions:   summary.TotalTransactions,
		SuccessTransactions: summary.SuccessTransactions,
		FailedTransactions:  summary.FailedTransactions,
		Revenue:             summary.Revenue,
		RevenueText:         utils.FormatCurrency(summary.Revenue),
		SuccessRate:         utils.RatePercent(summary.SuccessTransactions, summary.TotalTransactions),
		FailureRate:         utils.RatePercent(summary.FailedTransactions, summary.TotalTransactions),
	}, nil
}
