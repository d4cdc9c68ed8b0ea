package service

import (
	"context"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/pkg/pos"
	"pos_admin_v1/pkg/utils"
)

type ProductService struct {
	client *pos.Client
}

// NewProductService 工厂方法
func NewProductService(client *pos.Client) *ProductService {
	return &ProductService{client: client}
}

// ==================== 套餐 ====================

// List 拉套餐列表
// 套餐总量很小，用增量加载器把所有页取完再整体返回
func (s *ProductService) List(ctx context.Context) ([]dto.ProductView, error) {
	pager := pos.NewPager(func(ctx context.Context, page int) ([]pos.Product, int, error) {
		items, meta, err := s.client.ListProducts(ctx, page, 100)
		if err != nil {
			return nil, 0, err
		}
		return items, meta.TotalPages, nil
	})

	if err := pager.LoadFirst(ctx); err != nil {
		return nil, err
	}
	for pager.HasMore() {
		if _, err := pager.LoadMore(ctx); err != nil {
			return nil, err
		}
	}

	products := pager.Items()
	views := make([]dto.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(&p))
	}
	return views, nil
}

// Get 套餐详情
func (s *ProductService) Get(ctx context.Context, productID int64) (*dto.ProductView, error) {
	product, err := s.client.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	view := toProductView(product)
	return &view, nil
}

func toProductView(p *pos.Product) dto.ProductView {
	features := make([]dto.FeatureView, 0, len(p.Features))
	for _, f := range p.Features {
		features = append(features, dto.FeatureView{
			FeatureID:   f.FeatureID,
			FeatureName: f.FeatureName,
		})
	}
	return dto.ProductView{
		ProductID:    p.ProductID,
		ProductName:  p.ProductName,
		Description:  p.Description,
		Price:        p.Price,
		PriceText:    utils.FormatCurrency(p.Price),
		RequestLimit: p.RequestLimit,
		AccountLimit: p.AccountLimit,
		Discount:     p.Discount,
		Status:       p.Status,
		Duration:     p.Duration,
		QrcodeURL:    p.QrcodeURL,
		Features:     features,
	}
}

// ==================== 创建/编辑 ====================

// Create 创建套餐
func (s *ProductService) Create(ctx context.Context, req *dto.ProductSaveReq) error {
	return s.client.CreateProduct(ctx, buildProductPayload(req))
}

// Update 更新套餐
func (s *ProductService) Update(ctx context.Context, productID int64, req *dto.ProductSaveReq) error {
	return s.client.UpdateProduct(ctx, productID, buildProductPayload(req))
}

func buildProductPayload(req *dto.ProductSaveReq) map[string]interface{} {
	payload := map[string]interface{}{
		"productName":  req.ProductName,
		"description":  req.Description,
		"price":        req.Price,
		"requestLimit": req.RequestLimit,
		"accountLimit": req.AccountLimit,
		"discount":     req.Discount,
		"status":       req.Status,
		"duration":     req.Duration,
	}
	if len(req.FeatureIDs) > 0 {
		payload["featureIds"] = req.FeatureIDs
	}
	return payload
}

// ==================== 功能项字典 ====================

// Features 功能项字典，创建/编辑套餐的勾选列表用
func (s *ProductService) Features(ctx context.Context) ([]dto.FeatureView, error) {
	features, _, err := s.client.ListFeatures(ctx, 1, 100)
	if err != nil {
		return nil, err
	}
	views := make([]dto.FeatureView, 0, len(features))
	for _, f := range features {
		views = append(views, dto.FeatureView{
			FeatureID:   f.FeatureID,
			FeatureName: f.FeatureName,
		})
	}
	return views, nil
}
