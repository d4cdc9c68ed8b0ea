package pos

import (
	"encoding/json"
	"errors"
	"fmt"
)

// 上游所有响应都包在两种外壳之一里：
//   {success, data}                              —— 单对象/报表
//   {items, totalCount, page, pageSize, totalPages} —— 分页列表
// 旧版前端对坏外壳静默降级成空数组，这里改为显式报错，
// 调用方不会把"响应格式坏了"误认成"没有数据"

// ErrEnvelope 外壳格式错误
var ErrEnvelope = errors.New("上游响应外壳格式错误")

// dataEnvelope {success, data} 外壳
type dataEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// pagedEnvelope 分页外壳
type pagedEnvelope struct {
	Items      json.RawMessage `json:"items"`
	TotalCount int             `json:"totalCount"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// PageMeta 分页元数据
type PageMeta struct {
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int
}

// jsonUnmarshal 解析无外壳的裸 JSON 响应
func jsonUnmarshal(body []byte, out interface{}) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrEnvelope, err)
	}
	return nil
}

// decodeData 严格解包 {success, data}
// success=false 或 data 缺失都视为错误
func decodeData(body []byte, out interface{}) error {
	var env dataEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrEnvelope, err)
	}
	if !env.Success {
		if env.Message != "" {
			return fmt.Errorf("上游返回失败: %s", env.Message)
		}
		return fmt.Errorf("%w: success=false", ErrEnvelope)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%w: data 缺失", ErrEnvelope)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: data 解析失败: %v", ErrEnvelope, err)
	}
	return nil
}

// decodePage 严格解包分页外壳，items 缺失视为错误而不是空列表
func decodePage(body []byte, items interface{}) (*PageMeta, error) {
	var env pagedEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvelope, err)
	}
	if len(env.Items) == 0 || string(env.Items) == "null" {
		return nil, fmt.Errorf("%w: items 缺失", ErrEnvelope)
	}
	if err := json.Unmarshal(env.Items, items); err != nil {
		return nil, fmt.Errorf("%w: items 解析失败: %v", ErrEnvelope, err)
	}
	return &PageMeta{
		TotalCount: env.TotalCount,
		Page:       env.Page,
		PageSize:   env.PageSize,
		TotalPages: env.TotalPages,
	}, nil
}
