package utils

import "testing"

// ==================== 金额 ====================

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₫0"},
		{5, "₫5"},
		{999, "₫999"},
		{1000, "₫1.000"},
		{1234567, "₫1.234.567"},
		{1234567.49, "₫1.234.567"},
		{1234567.5, "₫1.234.568"},
		{-1500000, "-₫1.500.000"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Errorf("FormatCurrency(%v) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestRatePercent(t *testing.T) {
	cases := []struct {
		part, total int64
		want        float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 2, 50},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{999, 1000, 99.9},
		{1, 1, 100},
	}
	for _, c := range cases {
		if got := RatePercent(c.part, c.total); got != c.want {
			t.Errorf("RatePercent(%d, %d) = %v, want %v", c.part, c.total, got, c.want)
		}
	}
}

// ==================== 状态文案 ====================

func TestOrderStatusText(t *testing.T) {
	cases := map[int]string{
		0:  "Chờ thanh toán",
		1:  "Đã thanh toán",
		2:  "Đã hủy",
		99: "Unknown",
		-1: "Unknown",
	}
	for status, want := range cases {
		if got := OrderStatusText(status); got != want {
			t.Errorf("OrderStatusText(%d) = %s, want %s", status, got, want)
		}
	}
}

func TestPaymentMethodText(t *testing.T) {
	if got := PaymentMethodText("1"); got != "Tiền mặt" {
		t.Errorf("method 1 = %s", got)
	}
	if got := PaymentMethodText("2"); got != "Chuyển khoản" {
		t.Errorf("method 2 = %s", got)
	}
	// 未知码原样回显，不吞数据
	if got := PaymentMethodText("9"); got != "9" {
		t.Errorf("未知支付方式应原样回显, got %s", got)
	}
}

func TestShopStatusText(t *testing.T) {
	cases := map[int]string{
		0: "Không hoạt động",
		1: "Hoạt động",
		2: "Dùng thử",
		7: "Không xác định",
	}
	for status, want := range cases {
		if got := ShopStatusText(status); got != want {
			t.Errorf("ShopStatusText(%d) = %s, want %s", status, got, want)
		}
	}
}

func TestUserRoleName(t *testing.T) {
	cases := map[int]string{
		1:  "admin",
		2:  "staff",
		3:  "support",
		0:  "support",
		-5: "support",
	}
	for code, want := range cases {
		if got := UserRoleName(code); got != want {
			t.Errorf("UserRoleName(%d) = %s, want %s", code, got, want)
		}
	}
}

// ==================== 地址 ====================

func TestBuildAddress(t *testing.T) {
	got := BuildAddress("12 Nguyễn Huệ", "Phường Bến Thành", "Thành phố Hồ Chí Minh")
	want := "12 Nguyễn Huệ, Phường Bến Thành, Thành phố Hồ Chí Minh"
	if got != want {
		t.Errorf("BuildAddress = %s, want %s", got, want)
	}

	// 空段跳过
	if got := BuildAddress("", "Phường Ba Đình", "Thành phố Hà Nội"); got != "Phường Ba Đình, Thành phố Hà Nội" {
		t.Errorf("空门牌号: %s", got)
	}
	if got := BuildAddress("", "", ""); got != "" {
		t.Errorf("全空应返回空串: %s", got)
	}
}

func TestSplitAddressRoundTrip(t *testing.T) {
	house, ward, province := SplitAddress("12 Nguyễn Huệ, Phường Bến Thành, Thành phố Hồ Chí Minh")
	if house != "12 Nguyễn Huệ" || ward != "Phường Bến Thành" || province != "Thành phố Hồ Chí Minh" {
		t.Errorf("拆分结果错位: %q / %q / %q", house, ward, province)
	}

	// 不足三段
	house, ward, province = SplitAddress("Phường Ba Đình, Thành phố Hà Nội")
	if house != "Phường Ba Đình" || ward != "Thành phố Hà Nội" || province != "" {
		t.Errorf("两段地址按位置填充: %q / %q / %q", house, ward, province)
	}

	house, ward, province = SplitAddress("")
	if house != "" || ward != "" || province != "" {
		t.Errorf("空地址应返回三个空串")
	}
}

func TestSplitAddressOverflow(t *testing.T) {
	// 门牌号自身带 ", " 时会错位，多余的段并入省份，这是既有格式的已知行为
	_, _, province := SplitAddress("a, b, c, d")
	if province != "c, d" {
		t.Errorf("多余段应并入省份: %q", province)
	}
}
