package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/pkg/pos"
	"pos_admin_v1/pkg/utils"
)

type PromotionService struct {
	client *pos.Client
}

// NewPromotionService 工厂方法
func NewPromotionService(client *pos.Client) *PromotionService {
	return &PromotionService{client: client}
}

// ==================== 促销列表 ====================

// List 拉促销列表，type 字段在边界处统一规范化成数字
func (s *PromotionService) List(ctx context.Context) ([]dto.PromotionView, error) {
	pager := pos.NewPager(func(ctx context.Context, page int) ([]pos.Promotion, int, error) {
		items, meta, err := s.client.ListPromotions(ctx, page, 100)
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
	promotions := pager.Items()

	views := make([]dto.PromotionView, 0, len(promotions))
	for _, p := range promotions {
		promoType, err := NormalizePromotionType(p.Type)
		if err != nil {
			// 脏数据按百分比处理，记日志不拦整页
			log.Printf("促销 %d 的 type 字段无法识别 (%s)，按百分比处理", p.PromotionID, string(p.Type))
			promoType = dto.PromotionTypePercent
		}
		views = append(views, dto.PromotionView{
			PromotionID:   p.PromotionID,
			PromotionName: p.PromotionName,
			StartDate:     p.StartDate,
			EndDate:       p.EndDate,
			Value:         p.Value,
			ValueText:     promotionValueText(promoType, p.Value),
			Type:          promoType,
			Status:        p.Status,
			StatusText:    utils.PromotionStatusText(p.Status),
			ProductIDs:    p.ProductIDs,
		})
	}
	return views, nil
}

// NormalizePromotionType 规范化促销类型
// 上游历史数据里 type 既有字符串 ("%"/"VNĐ") 也有数字 (0/1)，
// 出网关一律统一成数字：0 百分比, 1 固定金额
func NormalizePromotionType(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("type 字段为空")
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		switch asString {
		case "%":
			return dto.PromotionTypePercent, nil
		case "VNĐ", "VND":
			return dto.PromotionTypeAmount, nil
		}
		// 有些历史数据把数字存成了字符串
		if n, err := strconv.Atoi(asString); err == nil {
			return validatePromotionType(n)
		}
		return 0, fmt.Errorf("无法识别的 type 字符串: %q", asString)
	}

	var asInt int
	if err := json.Unmarshal(raw, &asInt); err == nil {
		return validatePromotionType(asInt)
	}
	return 0, fmt.Errorf("无法识别的 type 值: %s", string(raw))
}

func validatePromotionType(n int) (int, error) {
	if n != dto.PromotionTypePercent && n != dto.PromotionTypeAmount {
		return 0, fmt.Errorf("type 数值越界: %d", n)
	}
	return n, nil
}

func promotionValueText(promoType int, value float64) string {
	if promoType == dto.PromotionTypePercent {
		return strconv.FormatFloat(value, 'f', -1, 64) + "%"
	}
	return utils.FormatCurrency(value)
}

// ==================== 创建/编辑 ====================

// Create 创建促销
func (s *PromotionService) Create(ctx context.Context, req *dto.PromotionSaveReq) error {
	payload, err := buildPromotionPayload(req)
	if err != nil {
		return err
	}
	return s.client.CreatePromotion(ctx, payload)
}

// Update 更新促销
func (s *PromotionService) Update(ctx context.Context, promotionID int64, req *dto.PromotionSaveReq) error {
	payload, err := buildPromotionPayload(req)
	if err != nil {
		return err
	}
	return s.client.UpdatePromotion(ctx, promotionID, payload)
}

func buildPromotionPayload(req *dto.PromotionSaveReq) (map[string]interface{}, error) {
	if _, err := validatePromotionType(req.Type); err != nil {
		return nil, err
	}
	if req.Type == dto.PromotionTypePercent && (req.Value <= 0 || req.Value > 100) {
		return nil, fmt.Errorf("百分比折扣必须在 (0, 100] 区间: %v", req.Value)
	}
	if req.Type == dto.PromotionTypeAmount && req.Value <= 0 {
		return nil, fmt.Errorf("减免金额必须大于 0: %v", req.Value)
	}

	payload := map[string]interface{}{
		"promotionName": req.PromotionName,
		"startDate":     req.StartDate,
		"endDate":       req.EndDate,
		"value":         req.Value,
		"type":          req.Type,
		"status":        req.Status,
	}
	if len(req.ProductIDs) > 0 {
		payload["productIds"] = req.ProductIDs
	}
	return payload, nil
}
