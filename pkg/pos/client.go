package pos

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client 上游 POS 平台 API 客户端
// 全系统只通过它访问上游，统一超时与外壳解析
type Client struct {
	http *resty.Client
}

// Config 客户端配置
type Config struct {
	BaseURL string
	Timeout time.Duration // 默认 20s
	Debug   bool
}

// ErrBatchUnsupported 上游不支持 ids 批量查询
var ErrBatchUnsupported = errors.New("上游不支持批量查询")

// ErrNotFound 资源不存在
var ErrNotFound = errors.New("资源不存在")

// NewClient 创建上游客户端
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	hc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetDebug(cfg.Debug).
		SetHeader("User-Agent", "Pos-Admin-Gateway/1.0").
		SetHeader("Accept", "application/json")

	return &Client{http: hc}
}

// ==================== 请求级凭证 ====================

type ctxKey int

const tokenCtxKey ctxKey = iota

// WithToken 把上游 JWT 挂到 ctx，后续经该 ctx 发出的请求都会带上
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey, token)
}

func tokenFrom(ctx context.Context) string {
	if token, ok := ctx.Value(tokenCtxKey).(string); ok {
		return token
	}
	return ""
}

// ==================== 通用请求 ====================

// get 发 GET 并校验 HTTP 状态
func (c *Client) get(ctx context.Context, path string, query map[string]string) ([]byte, int, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParams(query)
	if token := tokenFrom(ctx); token != "" {
		req.SetAuthToken(token)
	}
	resp, err := req.Get(path)
	if err != nil {
		return nil, 0, fmt.Errorf("请求上游失败 %s: %w", path, err)
	}
	return resp.Body(), resp.StatusCode(), nil
}

// send 发带 JSON body 的请求 (POST/PUT)
func (c *Client) send(ctx context.Context, method, path string, body interface{}) ([]byte, int, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if token := tokenFrom(ctx); token != "" {
		req.SetAuthToken(token)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, 0, fmt.Errorf("请求上游失败 %s: %w", path, err)
	}
	return resp.Body(), resp.StatusCode(), nil
}

func checkStatus(path string, code int, body []byte) error {
	if code >= 200 && code < 300 {
		return nil
	}
	if code == 404 {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return fmt.Errorf("上游 %s 返回 %d: %s", path, code, truncate(body, 200))
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// getPage 拉取一页资源并严格解包
func getPage[T any](ctx context.Context, c *Client, path string, query map[string]string) ([]T, *PageMeta, error) {
	body, code, err := c.get(ctx, path, query)
	if err != nil {
		return nil, nil, err
	}
	if err := checkStatus(path, code, body); err != nil {
		return nil, nil, err
	}

	var items []T
	meta, err := decodePage(body, &items)
	if err != nil {
		return nil, nil, err
	}
	return items, meta, nil
}

// getData 拉取单对象资源并严格解包
func getData(ctx context.Context, c *Client, path string, query map[string]string, out interface{}) error {
	body, code, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := checkStatus(path, code, body); err != nil {
		return err
	}
	return decodeData(body, out)
}

func pageQuery(page, pageSize int) map[string]string {
	return map[string]string{
		"page":     strconv.Itoa(page),
		"pageSize": strconv.Itoa(pageSize),
	}
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// ==================== 订单 ====================

// ListOrders 分页拉订单
func (c *Client) ListOrders(ctx context.Context, page, pageSize int) ([]Order, *PageMeta, error) {
	return getPage[Order](ctx, c, "/api/orders", pageQuery(page, pageSize))
}

// CreateOrder 创建订单，返回上游生成的订单
func (c *Client) CreateOrder(ctx context.Context, payload interface{}) (*Order, error) {
	body, code, err := c.send(ctx, "POST", "/api/orders", payload)
	if err != nil {
		return nil, err
	}
	if err := checkStatus("/api/orders", code, body); err != nil {
		return nil, err
	}

	var order Order
	if err := decodeData(body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ==================== 店铺 ====================

// ListShops 分页拉店铺
func (c *Client) ListShops(ctx context.Context, page, pageSize int) ([]Shop, *PageMeta, error) {
	return getPage[Shop](ctx, c, "/api/shops", pageQuery(page, pageSize))
}

// GetShop 按 shopId 查单个店铺 (上游用 pageSize=1 的列表接口承载)
func (c *Client) GetShop(ctx context.Context, shopID int64) (*Shop, error) {
	query := pageQuery(1, 1)
	query["shopId"] = strconv.FormatInt(shopID, 10)

	items, _, err := getPage[Shop](ctx, c, "/api/shops", query)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: shop %d", ErrNotFound, shopID)
	}
	return &items[0], nil
}

// BatchShops 按 ids 批量查店铺
// 上游不认识 ids 参数时返回 ErrBatchUnsupported，调用方自行降级
func (c *Client) BatchShops(ctx context.Context, ids []int64) ([]Shop, error) {
	query := pageQuery(1, len(ids))
	query["ids"] = joinIDs(ids)

	body, code, err := c.get(ctx, "/api/shops", query)
	if err != nil {
		return nil, err
	}
	if code == 400 || code == 404 || code == 405 {
		return nil, ErrBatchUnsupported
	}
	if err := checkStatus("/api/shops", code, body); err != nil {
		return nil, err
	}

	var items []Shop
	if _, err := decodePage(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateShop 创建店铺
func (c *Client) CreateShop(ctx context.Context, payload interface{}) error {
	body, code, err := c.send(ctx, "POST", "/api/shops", payload)
	if err != nil {
		return err
	}
	return checkStatus("/api/shops", code, body)
}

// UpdateShop 更新店铺
func (c *Client) UpdateShop(ctx context.Context, shopID int64, payload interface{}) error {
	path := fmt.Sprintf("/api/shops/%d", shopID)
	body, code, err := c.send(ctx, "PUT", path, payload)
	if err != nil {
		return err
	}
	return checkStatus(path, code, body)
}

// ExpiringShops 即将到期的店铺 Top N
func (c *Client) ExpiringShops(ctx context.Context, top int) ([]Shop, error) {
	var shops []Shop
	err := getData(ctx, c, "/api/shops/expiring", map[string]string{"top": strconv.Itoa(top)}, &shops)
	if err != nil {
		return nil, err
	}
	return shops, nil
}

// ==================== 用户 ====================

// ListUsers 分页拉后台账号
func (c *Client) ListUsers(ctx context.Context, page, pageSize int) ([]User, *PageMeta, error) {
	return getPage[User](ctx, c, "/api/users", pageQuery(page, pageSize))
}

// CreateUser 创建账号
func (c *Client) CreateUser(ctx context.Context, payload interface{}) error {
	body, code, err := c.send(ctx, "POST", "/api/users", payload)
	if err != nil {
		return err
	}
	return checkStatus("/api/users", code, body)
}

// UpdateUser 更新账号 (头像先落存储再以 avatar URL 下发)
func (c *Client) UpdateUser(ctx context.Context, userID int64, payload interface{}) error {
	path := fmt.Sprintf("/api/users/%d", userID)
	body, code, err := c.send(ctx, "PUT", path, payload)
	if err != nil {
		return err
	}
	return checkStatus(path, code, body)
}

// ==================== 套餐 ====================

// ListProducts 分页拉套餐
func (c *Client) ListProducts(ctx context.Context, page, pageSize int) ([]Product, *PageMeta, error) {
	return getPage[Product](ctx, c, "/api/products", pageQuery(page, pageSize))
}

// GetProduct 按 productId 查单个套餐
func (c *Client) GetProduct(ctx context.Context, productID int64) (*Product, error) {
	query := pageQuery(1, 1)
	query["productId"] = strconv.FormatInt(productID, 10)

	items, _, err := getPage[Product](ctx, c, "/api/products", query)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
	}
	return &items[0], nil
}

// BatchProducts 按 ids 批量查套餐，降级语义同 BatchShops
func (c *Client) BatchProducts(ctx context.Context, ids []int64) ([]Product, error) {
	query := pageQuery(1, len(ids))
	query["ids"] = joinIDs(ids)

	body, code, err := c.get(ctx, "/api/products", query)
	if err != nil {
		return nil, err
	}
	if code == 400 || code == 404 || code == 405 {
		return nil, ErrBatchUnsupported
	}
	if err := checkStatus("/api/products", code, body); err != nil {
		return nil, err
	}

	var items []Product
	if _, err := decodePage(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateProduct 创建套餐
func (c *Client) CreateProduct(ctx context.Context, payload interface{}) error {
	body, code, err := c.send(ctx, "POST", "/api/products", payload)
	if err != nil {
		return err
	}
	return checkStatus("/api/products", code, body)
}

// UpdateProduct 更新套餐
func (c *Client) UpdateProduct(ctx context.Context, productID int64, payload interface{}) error {
	path := fmt.Sprintf("/api/products/%d", productID)
	body, code, err := c.send(ctx, "PUT", path, payload)
	if err != nil {
		return err
	}
	return checkStatus(path, code, body)
}

// ListFeatures 拉套餐功能项字典
func (c *Client) ListFeatures(ctx context.Context, page, pageSize int) ([]Feature, *PageMeta, error) {
	return getPage[Feature](ctx, c, "/api/features", pageQuery(page, pageSize))
}

// ==================== 促销 ====================

// ListPromotions 分页拉促销
func (c *Client) ListPromotions(ctx context.Context, page, pageSize int) ([]Promotion, *PageMeta, error) {
	return getPage[Promotion](ctx, c, "/api/promotions", pageQuery(page, pageSize))
}

// CreatePromotion 创建促销
func (c *Client) CreatePromotion(ctx context.Context, payload interface{}) error {
	body, code, err := c.send(ctx, "POST", "/api/promotions", payload)
	if err != nil {
		return err
	}
	return checkStatus("/api/promotions", code, body)
}

// UpdatePromotion 更新促销
func (c *Client) UpdatePromotion(ctx context.Context, promotionID int64, payload interface{}) error {
	path := fmt.Sprintf("/api/promotions/%d", promotionID)
	body, code, err := c.send(ctx, "PUT", path, payload)
	if err != nil {
		return err
	}
	return checkStatus(path, code, body)
}

// ==================== 报表 ====================

// GetReportData 仪表盘汇总
func (c *Client) GetReportData(ctx context.Context) (*ReportData, error) {
	var data ReportData
	if err := getData(ctx, c, "/api/reports/get-report-data", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// MonthlyOrderSummary 本月交易汇总
func (c *Client) MonthlyOrderSummary(ctx context.Context) (*MonthlyOrderSummary, error) {
	var data MonthlyOrderSummary
	if err := getData(ctx, c, "/api/reports/monthly-order-summary", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// MonthlyRevenue 月度营收曲线
func (c *Client) MonthlyRevenue(ctx context.Context) ([]MonthlyRevenuePoint, error) {
	var data []MonthlyRevenuePoint
	if err := getData(ctx, c, "/api/reports/monthly-revenue", nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// ShopByPackage 按套餐分布
func (c *Client) ShopByPackage(ctx context.Context) ([]PackageShopCount, error) {
	var data []PackageShopCount
	if err := getData(ctx, c, "/api/reports/shop-by-package", nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// ShopNewVsRenewal 新购/续费对比
func (c *Client) ShopNewVsRenewal(ctx context.Context) ([]NewVsRenewalPoint, error) {
	var data []NewVsRenewalPoint
	if err := getData(ctx, c, "/api/reports/shop-new-vs-renewal", nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// ShopByProvince 按省份分布
func (c *Client) ShopByProvince(ctx context.Context) ([]ProvinceShopCount, error) {
	var data []ProvinceShopCount
	if err := getData(ctx, c, "/api/reports/shop-by-province", nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// ==================== 支付 ====================

// VietQR 取订单的收款二维码
func (c *Client) VietQR(ctx context.Context, orderID int64) (*VietQRResult, error) {
	body, code, err := c.get(ctx, "/api/sepay/vietqr", map[string]string{
		"orderId": strconv.FormatInt(orderID, 10),
	})
	if err != nil {
		return nil, err
	}
	if err := checkStatus("/api/sepay/vietqr", code, body); err != nil {
		return nil, err
	}

	// 该接口不走 data 外壳
	var result VietQRResult
	if err := jsonUnmarshal(body, &result); err != nil {
		return nil, err
	}
	if !result.Success || result.URL == "" {
		return nil, fmt.Errorf("%w: VietQR 返回无效", ErrEnvelope)
	}
	return &result, nil
}

// ==================== 鉴权 ====================

// Login 上游登录，成功返回 token + 用户对象
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body, code, err := c.send(ctx, "POST", "/api/authentication/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	if code == 401 || code == 403 {
		return nil, fmt.Errorf("账号或密码错误")
	}
	if err := checkStatus("/api/authentication/login", code, body); err != nil {
		return nil, err
	}

	var result LoginResult
	if err := decodeData(body, &result); err != nil {
		return nil, err
	}
	// token 字段缺失也算失败，不允许"半登录"状态
	if result.Token == "" {
		return nil, fmt.Errorf("%w: 登录响应缺少 token", ErrEnvelope)
	}
	return &result, nil
}
