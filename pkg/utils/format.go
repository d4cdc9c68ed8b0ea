package utils

import (
	"math"
	"strconv"
	"strings"
)

// 展示层格式化工具
// 标签文案是越南语（面向越南市场的后台），映射关系与前端展示保持一致

// ==================== 金额 ====================

// FormatCurrency 金额格式化：四舍五入取整，千分位用 '.' 分组，前缀 ₫
// 例：1234567 -> "₫1.234.567"
func FormatCurrency(value float64) string {
	n := int64(math.Round(value))

	neg := n < 0
	if neg {
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if neg {
		return "-₫" + b.String()
	}
	return "₫" + b.String()
}

// RatePercent 占比百分数，保留一位小数 (49.95% -> 50.0)
// total 为 0 时返回 0
func RatePercent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// ==================== 状态码 → 文案 ====================

// OrderStatusText 订单状态文案
// 0 待支付, 1 已支付, 2 已取消，未知码兜底 "Unknown"
func OrderStatusText(status int) string {
	switch status {
	case 0:
		return "Chờ thanh toán"
	case 1:
		return "Đã thanh toán"
	case 2:
		return "Đã hủy"
	default:
		return "Unknown"
	}
}

// PaymentMethodText 支付方式文案，未知码原样回显
func PaymentMethodText(method string) string {
	switch method {
	case "1":
		return "Tiền mặt"
	case "2":
		return "Chuyển khoản"
	default:
		return method
	}
}

// ShopStatusText 店铺状态文案
func ShopStatusText(status int) string {
	switch status {
	case 0:
		return "Không hoạt động"
	case 1:
		return "Hoạt động"
	case 2:
		return "Dùng thử"
	default:
		return "Không xác định"
	}
}

// PromotionStatusText 促销状态文案
func PromotionStatusText(status int) string {
	switch status {
	case 1:
		return "Đang hoạt động"
	case 0:
		return "Tạm ngưng"
	default:
		return "Không xác định"
	}
}

// UserStatusText 账号状态文案，1 在职，其他一律按停职处理
func UserStatusText(status int) string {
	if status == 1 {
		return "Đang làm việc"
	}
	return "Tạm ngưng"
}

// UserRoleName 角色码 → 角色名
// 以列表页的口径为准：1 admin, 2 staff, 其余归入 support
func UserRoleName(code int) string {
	switch code {
	case 1:
		return "admin"
	case 2:
		return "staff"
	default:
		return "support"
	}
}

// ==================== 地址 ====================

// AddressSeparator 地址分隔符
// 地址存成一个自由文本字段，按 "门牌, 坊, 省" 的顺序用 ", " 拼接。
// 任何一段自身含 ", " 时拆分会错位，这是既有数据格式的已知缺陷。
const AddressSeparator = ", "

// BuildAddress 组装地址，空段跳过
func BuildAddress(houseNumber, ward, province string) string {
	parts := make([]string, 0, 3)
	if houseNumber != "" {
		parts = append(parts, houseNumber)
	}
	if ward != "" {
		parts = append(parts, ward)
	}
	if province != "" {
		parts = append(parts, province)
	}
	return strings.Join(parts, AddressSeparator)
}

// SplitAddress 按位置拆回三段，不足的段为空串
func SplitAddress(address string) (houseNumber, ward, province string) {
	if address == "" {
		return "", "", ""
	}
	parts := strings.Split(address, AddressSeparator)
	if len(parts) > 0 {
		houseNumber = parts[0]
	}
	if len(parts) > 1 {
		ward = parts[1]
	}
	if len(parts) > 2 {
		province = strings.Join(parts[2:], AddressSeparator)
	}
	return houseNumber, ward, province
}
