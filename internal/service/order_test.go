package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ystemsrx/smart-shop-sub003/internal/session"
	"github.com/ystemsrx/smart-shop-sub003/internal/status"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

// 起一个假的上游商城API，按路径返回给定的data
func fakeUpstream(t *testing.T, handler http.HandlerFunc) func() {
	t.Helper()
	server := httptest.NewServer(handler)
	old := upstream.API
	upstream.API = upstream.New(server.URL, time.Second)
	return func() {
		upstream.API = old
		server.Close()
	}
}

func writeData(w http.ResponseWriter, data interface{}) {
	json.NewEncoder(w).Encode(map[string]interface{}{"code": 200, "data": data})
}

func TestDecorateUnpaidOrderGetsCountdown(t *testing.T) {
	now := time.Unix(1700000300, 0)
	snapshot := types.OrderSnapshot{
		Order: status.Order{
			OrderNo:            "20231114001",
			PaymentStatus:      status.PaymentPending,
			CreatedAtTimestamp: 1700000000,
		},
	}

	view := Order.Decorate(snapshot, now)
	if view.UnifiedStatus != "未付款" {
		t.Fatalf("expected 未付款, got %s", view.UnifiedStatus)
	}
	if view.RemainingSeconds != 600 {
		t.Fatalf("expected 600 remaining seconds, got %d", view.RemainingSeconds)
	}
	if view.Countdown != "10:00" {
		t.Fatalf("expected countdown 10:00, got %s", view.Countdown)
	}
}

func TestDecorateNoCountdownOutsideUnpaid(t *testing.T) {
	now := time.Unix(1700000300, 0)
	cases := []struct {
		payment string
		want    string
	}{
		{status.PaymentProcessing, "待确认"},
		{status.PaymentSucceeded, "待配送"},
	}
	for _, c := range cases {
		view := Order.Decorate(types.OrderSnapshot{
			Order: status.Order{PaymentStatus: c.payment, CreatedAtTimestamp: 1700000000},
		}, now)
		if view.UnifiedStatus != c.want {
			t.Fatalf("payment=%s: expected %s, got %s", c.payment, c.want, view.UnifiedStatus)
		}
		if view.RemainingSeconds != 0 || view.Countdown != "" {
			t.Fatalf("payment=%s: countdown must be absent, got %d %q", c.payment, view.RemainingSeconds, view.Countdown)
		}
	}

	// 支付失败的订单同样是未付款，但倒计时没有意义
	view := Order.Decorate(types.OrderSnapshot{
		Order: status.Order{PaymentStatus: status.PaymentFailed, CreatedAtTimestamp: 1700000000},
	}, now)
	if view.UnifiedStatus != "未付款" {
		t.Fatalf("failed payment: expected 未付款, got %s", view.UnifiedStatus)
	}
	if view.RemainingSeconds != 0 {
		t.Fatalf("failed payment must not get a countdown, got %d", view.RemainingSeconds)
	}
}

func TestGetListDecoratesEveryOrder(t *testing.T) {
	cleanup := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders" {
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
		writeData(w, []map[string]interface{}{
			{"order_no": "A1", "payment_status": "succeeded", "status": "shipped"},
			{"order_no": "A2", "payment_status": "succeeded", "status": "delivered"},
			{"order_no": "A3", "payment_status": "processing"},
			{"order_no": "A4", "payment_status": "pending", "created_at_timestamp": time.Now().Unix()},
		})
	})
	defer cleanup()

	views, err := Order.GetList(session.Session{Token: "tok"})
	if err != nil {
		t.Fatalf("GetList: %v", err)
	}
	if len(views) != 4 {
		t.Fatalf("expected 4 orders, got %d", len(views))
	}

	wants := []string{"配送中", "已完成", "待确认", "未付款"}
	for i, want := range wants {
		if views[i].UnifiedStatus != want {
			t.Fatalf("order %s: expected %s, got %s", views[i].OrderNo, want, views[i].UnifiedStatus)
		}
	}
	if views[3].RemainingSeconds == 0 {
		t.Fatalf("fresh unpaid order should have a running countdown")
	}
}

func TestGetListToleratesMalformedTimestamp(t *testing.T) {
	cleanup := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []map[string]interface{}{
			{"order_no": "B1", "payment_status": "pending", "created_at_timestamp": "not-a-number"},
		})
	})
	defer cleanup()

	views, err := Order.GetList(session.Session{Token: "tok"})
	if err != nil {
		t.Fatalf("a bad timestamp must not break the order list: %v", err)
	}
	if views[0].UnifiedStatus != "未付款" {
		t.Fatalf("expected 未付款, got %s", views[0].UnifiedStatus)
	}
	if views[0].RemainingSeconds != 0 || views[0].Countdown != "00:00" {
		t.Fatalf("expected zeroed countdown, got %d %q", views[0].RemainingSeconds, views[0].Countdown)
	}
}

func TestMarkPaid(t *testing.T) {
	cleanup := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders/A1/mark-paid" {
			t.Errorf("unexpected upstream call %s %s", r.Method, r.URL.Path)
		}
		writeData(w, map[string]interface{}{"order_no": "A1", "payment_status": "processing"})
	})
	defer cleanup()

	view, err := Order.MarkPaid(session.Session{Token: "tok"}, "A1")
	if err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	if view.UnifiedStatus != "待确认" {
		t.Fatalf("after mark-paid expected 待确认, got %s", view.UnifiedStatus)
	}
}

func TestReservationPollerFetchesFreshSnapshots(t *testing.T) {
	paid := false
	cleanup := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		payment := "pending"
		if paid {
			payment = "succeeded"
		}
		writeData(w, map[string]interface{}{
			"order_no":             "C1",
			"payment_status":       payment,
			"created_at_timestamp": time.Now().Unix(),
		})
	})
	defer cleanup()

	poller := Order.NewReservationPoller(session.Session{Token: "tok"}, "C1", time.Millisecond)

	ticks := 0
	done := make(chan struct{})
	go func() {
		poller.Run(func(tick status.Tick) bool {
			ticks++
			if ticks == 2 {
				paid = true
			}
			return true
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("poller did not stop after payment succeeded")
	}
	if ticks < 3 {
		t.Fatalf("expected at least 3 ticks, got %d", ticks)
	}
}
