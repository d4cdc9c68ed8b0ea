package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/pkg/pos"
)

// ==================== 测试辅助 ====================

func shopUpstream(t *testing.T, gotBody *map[string]interface{}) *pos.Client {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/shops", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			_ = json.NewDecoder(r.Body).Decode(gotBody)
			fmt.Fprint(w, `{"success":true,"data":{}}`)
			return
		}
		fmt.Fprint(w, `{"items":[
			{"shopId":11,"shopName":"Quán Cà Phê Sáng","fullname":"Trần Thị B","phonenumber":"0912345678",
			 "email":"b@example.com","address":"5 Hai Bà Trưng, Phường Sài Gòn, Thành phố Hồ Chí Minh",
			 "status":2,"productId":301}
		],"totalCount":1,"page":1,"pageSize":10,"totalPages":1}`)
	})
	mux.HandleFunc("/api/shops/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(gotBody)
		fmt.Fprint(w, `{"success":true,"data":{}}`)
	})
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("productId")
		fmt.Fprintf(w, `{"items":[{"productId":%s,"productName":"Gói-%s"}],"totalCount":1,"page":1,"pageSize":1,"totalPages":1}`, id, id)
	})
	mux.HandleFunc("/api/shops/expiring", func(w http.ResponseWriter, r *http.Request) {
		soon := time.Now().Add(72 * time.Hour).Format(time.RFC3339)
		fmt.Fprintf(w, `{"success":true,"data":[
			{"shopId":11,"shopName":"Quán Cà Phê Sáng","fullname":"Trần Thị B","expiredAt":%q},
			{"shopId":12,"shopName":"Tạp Hóa Cô Tư","fullname":"Lê Văn C","expiredAt":"2020-01-01T00:00:00"}]}`, soon)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return pos.NewClient(&pos.Config{BaseURL: ts.URL})
}

func validShopReq() *dto.ShopSaveReq {
	return &dto.ShopSaveReq{
		ShopName:     "Quán Mới",
		Fullname:     "Phạm Văn D",
		Phonenumber:  "0987654321",
		Email:        "d@example.com",
		HouseNumber:  "9 Trần Hưng Đạo",
		WardCode:     "00070",
		ProvinceCode: "01",
		ProductID:    302,
		Status:       1,
	}
}

// ==================== 列表 ====================

func TestShopList(t *testing.T) {
	deleteNameCache(301)
	svc := NewShopService(shopUpstream(t, &map[string]interface{}{}))

	resp, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("len = %d", len(resp.Items))
	}

	shop := resp.Items[0]
	if shop.StatusText != "Dùng thử" {
		t.Errorf("状态文案 = %s", shop.StatusText)
	}
	if shop.ProductName != "Gói-301" {
		t.Errorf("套餐名 = %s", shop.ProductName)
	}
	if resp.HasMore {
		t.Error("单页结果 hasMore 应为 false")
	}
}

// ==================== 创建/编辑 ====================

func TestShopCreateBuildsAddress(t *testing.T) {
	var gotBody map[string]interface{}
	svc := NewShopService(shopUpstream(t, &gotBody))

	if err := svc.Create(context.Background(), validShopReq()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if gotBody["address"] != "9 Trần Hưng Đạo, Phường Hoàn Kiếm, Thành phố Hà Nội" {
		t.Errorf("address = %v", gotBody["address"])
	}
	if gotBody["status"] != float64(1) || gotBody["productId"] != float64(302) {
		t.Errorf("套餐/状态: %v / %v", gotBody["productId"], gotBody["status"])
	}
}

func TestShopCreateTrialOverride(t *testing.T) {
	var gotBody map[string]interface{}
	svc := NewShopService(shopUpstream(t, &gotBody))

	req := validShopReq()
	req.Trial = true
	// 试用模式下这些值应被忽略
	req.Status = 1
	req.ProductID = 302

	if err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if gotBody["status"] != float64(ShopStatusTrial) {
		t.Errorf("试用店状态 = %v, want 2", gotBody["status"])
	}
	if gotBody["productId"] != float64(TrialProductID) {
		t.Errorf("试用店套餐 = %v, want 1", gotBody["productId"])
	}
}

func TestShopSaveInvalidWard(t *testing.T) {
	svc := NewShopService(shopUpstream(t, &map[string]interface{}{}))

	req := validShopReq()
	req.WardCode = "99999"
	req.WardName = ""
	if err := svc.Create(context.Background(), req); err == nil {
		t.Error("无效坊编码且无坊名应拒绝")
	}

	// 编码查不到但带了坊名，按坊名落地址 (上游历史数据的过渡期写法)
	req.WardName = "Phường Cũ"
	if err := svc.Create(context.Background(), req); err != nil {
		t.Errorf("带坊名应放行: %v", err)
	}
}

// ==================== 到期提醒 ====================

func TestShopExpiring(t *testing.T) {
	svc := NewShopService(shopUpstream(t, &map[string]interface{}{}))

	views, err := svc.Expiring(context.Background(), 5)
	if err != nil {
		t.Fatalf("Expiring: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("len = %d", len(views))
	}
	// 3 天后到期
	if views[0].DaysLeft < 2 || views[0].DaysLeft > 3 {
		t.Errorf("daysLeft = %d", views[0].DaysLeft)
	}
	// 已过期归 0
	if views[1].DaysLeft != 0 {
		t.Errorf("过期店 daysLeft = %d, want 0", views[1].DaysLeft)
	}
}
