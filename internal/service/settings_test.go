package service

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ystemsrx/smart-shop-sub003/internal/session"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
)

func TestToggleOptimisticRollback(t *testing.T) {
	failToggle := true
	cleanup := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/delivery-settings":
			writeData(w, types.DeliverySettings{Enabled: true, BaseFee: 2})
		case "/api/admin/delivery-settings/toggle":
			if failToggle {
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(map[string]interface{}{"code": 502, "msg": "上游不可用"})
				return
			}
			writeData(w, types.DeliverySettings{Enabled: false, BaseFee: 2})
		default:
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
	})
	defer cleanup()

	svc := new(SettingsService)
	sess := session.Session{Token: "admin-tok"}

	if _, err := svc.Get(sess); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if mirror := svc.Mirror(); mirror == nil || !mirror.Enabled {
		t.Fatalf("expected mirror enabled after Get, got %+v", mirror)
	}

	// 上游失败：镜像必须回到更新前的快照
	if _, err := svc.Toggle(sess); err == nil {
		t.Fatalf("expected toggle failure")
	}
	if mirror := svc.Mirror(); mirror == nil || !mirror.Enabled {
		t.Fatalf("expected rollback to enabled=true, got %+v", mirror)
	}

	// 上游成功：镜像保持新状态
	failToggle = false
	saved, err := svc.Toggle(sess)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if saved.Enabled {
		t.Fatalf("expected disabled after toggle, got %+v", saved)
	}
	if mirror := svc.Mirror(); mirror == nil || mirror.Enabled {
		t.Fatalf("expected mirror disabled after successful toggle, got %+v", mirror)
	}
}

func TestToggleFetchesWhenMirrorEmpty(t *testing.T) {
	toggleCalls := 0
	cleanup := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/delivery-settings":
			writeData(w, types.DeliverySettings{Enabled: false, BaseFee: 1.5})
		case "/api/admin/delivery-settings/toggle":
			toggleCalls++
			var body map[string]bool
			json.NewDecoder(r.Body).Decode(&body)
			writeData(w, types.DeliverySettings{Enabled: body["enabled"], BaseFee: 1.5})
		}
	})
	defer cleanup()

	svc := new(SettingsService)
	saved, err := svc.Toggle(session.Session{Token: "admin-tok"})
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !saved.Enabled {
		t.Fatalf("expected toggle from false to true, got %+v", saved)
	}
	if toggleCalls != 1 {
		t.Fatalf("expected exactly one toggle call, got %d", toggleCalls)
	}
}

func TestSaveRollsBackOnFailure(t *testing.T) {
	cleanup := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/admin/delivery-settings" && r.Method == http.MethodGet:
			writeData(w, types.DeliverySettings{Enabled: true, BaseFee: 2, Notice: "今日正常配送"})
		case r.URL.Path == "/api/admin/delivery-settings" && r.Method == http.MethodPut:
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]interface{}{"code": 500, "msg": "保存失败"})
		}
	})
	defer cleanup()

	svc := new(SettingsService)
	sess := session.Session{Token: "admin-tok"}
	if _, err := svc.Get(sess); err != nil {
		t.Fatalf("Get: %v", err)
	}

	_, err := svc.Save(sess, types.DeliverySettings{Enabled: true, BaseFee: 99})
	if err == nil {
		t.Fatalf("expected save failure")
	}
	mirror := svc.Mirror()
	if mirror == nil || mirror.BaseFee != 2 || mirror.Notice != "今日正常配送" {
		t.Fatalf("expected mirror restored to prior snapshot, got %+v", mirror)
	}
}
