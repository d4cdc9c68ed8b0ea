package refdata

import "testing"

func TestFindProvince(t *testing.T) {
	p := FindProvince("79")
	if p == nil || p.Name != "Hồ Chí Minh" {
		t.Fatalf("FindProvince(79) = %+v", p)
	}
	if p.FullName != "Thành phố Hồ Chí Minh" {
		t.Errorf("fullName = %s", p.FullName)
	}

	if FindProvince("98") != nil {
		t.Error("不存在的编码应返回 nil")
	}
	if FindProvince("") != nil {
		t.Error("空编码应返回 nil")
	}
}

func TestFindWard(t *testing.T) {
	w := FindWard("79", "26743")
	if w == nil || w.Name != "Phường Bến Thành" {
		t.Fatalf("FindWard(79, 26743) = %+v", w)
	}

	// 坊编码对、省编码错 → 查不到
	if FindWard("01", "26743") != nil {
		t.Error("跨省坊编码应返回 nil")
	}
	if FindWard("98", "26743") != nil {
		t.Error("无效省编码应返回 nil")
	}
}

func TestProvincesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Provinces {
		if seen[p.Code] {
			t.Errorf("省编码重复: %s", p.Code)
		}
		seen[p.Code] = true
	}
	if len(Provinces) != 34 {
		t.Errorf("省份数量 = %d, want 34", len(Provinces))
	}
}

func TestFindBankByBin(t *testing.T) {
	b := FindBankByBin("970436")
	if b == nil || b.ShortName != "Vietcombank" {
		t.Fatalf("FindBankByBin(970436) = %+v", b)
	}

	if FindBankByBin("000000") != nil {
		t.Error("未知 bin 应返回 nil")
	}
}

func TestBanksUniqueBin(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range Banks {
		if seen[b.Bin] {
			t.Errorf("bin 重复: %s", b.Bin)
		}
		seen[b.Bin] = true
	}
}
