package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pos_admin_v1/internal/dto"
	"pos_admin_v1/pkg/pos"
)

// ==================== 测试辅助 ====================

func userUpstream(t *testing.T, gotBody *map[string]interface{}) *pos.Client {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fmt.Fprint(w, `{"items":[
				{"userId":1,"username":"admin","fullName":"Quản trị viên","email":"admin@example.com",
				 "phoneNumber":"0901234567","status":1,"role":1},
				{"userId":2,"username":"staff01","fullName":"Nhân viên A","status":0,"role":2}
			],"totalCount":2,"page":1,"pageSize":10,"totalPages":1}`)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(gotBody)
		fmt.Fprint(w, `{"success":true,"data":{}}`)
	})
	mux.HandleFunc("/api/users/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(gotBody)
		fmt.Fprint(w, `{"success":true,"data":{}}`)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return pos.NewClient(&pos.Config{BaseURL: ts.URL})
}

func localStorage(t *testing.T) (*StorageService, string) {
	dir := t.TempDir()
	storage, err := NewStorageService(&StorageConfig{
		Provider: "local",
		BasePath: dir,
		Endpoint: "http://localhost:8080/uploads",
	})
	if err != nil {
		t.Fatalf("NewStorageService: %v", err)
	}
	return storage, dir
}

// ==================== 员工列表 ====================

func TestUserList(t *testing.T) {
	storage, _ := localStorage(t)
	svc := NewUserService(userUpstream(t, &map[string]interface{}{}), storage)

	resp, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("len = %d", len(resp.Items))
	}
	if resp.Items[0].RoleName != "admin" || resp.Items[0].StatusText != "Đang làm việc" {
		t.Errorf("管理员行: %s / %s", resp.Items[0].RoleName, resp.Items[0].StatusText)
	}
	if resp.Items[1].RoleName != "staff" || resp.Items[1].StatusText != "Tạm ngưng" {
		t.Errorf("员工行: %s / %s", resp.Items[1].RoleName, resp.Items[1].StatusText)
	}
}

// ==================== 更新 + 头像 ====================

func TestUserUpdateWithAvatar(t *testing.T) {
	var gotBody map[string]interface{}
	storage, dir := localStorage(t)
	svc := NewUserService(userUpstream(t, &gotBody), storage)

	avatar := []byte("fake-png-bytes")
	req := &dto.UserUpdateReq{FullName: "Tên Mới"}
	if err := svc.Update(context.Background(), 2, req, avatar, "face.png", "image/png"); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// 上游收到的是 URL，不是文件本体
	url, ok := gotBody["avatar"].(string)
	if !ok || !strings.HasPrefix(url, "http://localhost:8080/uploads/") {
		t.Fatalf("avatar 字段 = %v", gotBody["avatar"])
	}
	if gotBody["fullName"] != "Tên Mới" {
		t.Errorf("fullName = %v", gotBody["fullName"])
	}

	// 文件本体落在本地存储，按 URL 尾段定位
	key := strings.TrimPrefix(url, "http://localhost:8080/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	if err != nil {
		t.Fatalf("读取落盘文件: %v", err)
	}
	if string(data) != "fake-png-bytes" {
		t.Errorf("落盘内容不一致: %s", data)
	}
	if filepath.Ext(key) != ".png" {
		t.Errorf("扩展名应保留: %s", key)
	}
}

func TestUserUpdateNoFields(t *testing.T) {
	storage, _ := localStorage(t)
	svc := NewUserService(userUpstream(t, &map[string]interface{}{}), storage)

	err := svc.Update(context.Background(), 2, &dto.UserUpdateReq{}, nil, "", "")
	if err == nil {
		t.Fatal("空更新应报错")
	}
}
