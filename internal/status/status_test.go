package status

import (
	"encoding/json"
	"testing"
)

func TestResolvePaymentDominatesFulfillment(t *testing.T) {
	// 付款未成功时，配送字段无论是什么都不影响结果
	for _, pay := range []string{PaymentPending, PaymentFailed, ""} {
		for _, ful := range []string{FulfillShipped, FulfillDelivered, "packed", ""} {
			got := Resolve(Order{PaymentStatus: pay, Status: ful})
			if got != Unpaid {
				t.Fatalf("payment_status=%q status=%q: expected 未付款, got %s", pay, ful, got)
			}
		}
	}

	for _, ful := range []string{FulfillShipped, FulfillDelivered, ""} {
		got := Resolve(Order{PaymentStatus: PaymentProcessing, Status: ful})
		if got != Confirming {
			t.Fatalf("processing order with status=%q: expected 待确认, got %s", ful, got)
		}
	}
}

func TestResolveSucceededBranches(t *testing.T) {
	cases := []struct {
		fulfill string
		want    Unified
	}{
		{FulfillShipped, Delivering},
		{FulfillDelivered, Completed},
		{"", Dispatch},
		{"packed", Dispatch},
	}
	for _, c := range cases {
		got := Resolve(Order{PaymentStatus: PaymentSucceeded, Status: c.fulfill})
		if got != c.want {
			t.Fatalf("succeeded order with status=%q: expected %s, got %s", c.fulfill, c.want, got)
		}
	}
}

func TestResolveUnknownPaymentStatusFallsBack(t *testing.T) {
	// 未来可能出现的支付状态（比如refunded）目前一律按未付款处理
	got := Resolve(Order{PaymentStatus: "refunded", Status: FulfillDelivered})
	if got != Unpaid {
		t.Fatalf("expected 未付款 for unknown payment status, got %s", got)
	}
}

func TestResolveIdempotent(t *testing.T) {
	order := Order{PaymentStatus: PaymentSucceeded, Status: FulfillShipped}
	if Resolve(order) != Resolve(order) {
		t.Fatalf("expected identical result on identical snapshot")
	}
	if Resolve(order) != Delivering {
		t.Fatalf("expected 配送中, got %s", Resolve(order))
	}
}

func TestRemainingSecondsScenario(t *testing.T) {
	// 下单5分钟后查询，应剩余10分钟
	order := Order{CreatedAtTimestamp: 1700000000}
	got := RemainingSeconds(order, 1700000300)
	if got != 600 {
		t.Fatalf("expected 600 remaining seconds, got %d", got)
	}
	if FormatCountdown(got) != "10:00" {
		t.Fatalf("expected countdown 10:00, got %s", FormatCountdown(got))
	}
}

func TestRemainingSecondsMonotonicAndClamped(t *testing.T) {
	order := Order{CreatedAtTimestamp: 1700000000}
	prev := RemainingSeconds(order, 1700000000)
	if prev != ReservationWindow {
		t.Fatalf("expected full window at creation time, got %d", prev)
	}
	for now := int64(1700000000); now <= 1700000000+ReservationWindow+120; now += 37 {
		cur := RemainingSeconds(order, now)
		if cur > prev {
			t.Fatalf("remaining seconds increased from %d to %d at now=%d", prev, cur, now)
		}
		if cur < 0 {
			t.Fatalf("remaining seconds went negative: %d", cur)
		}
		prev = cur
	}
	// 到期瞬间恰好为0，之后保持0
	if got := RemainingSeconds(order, 1700000000+ReservationWindow); got != 0 {
		t.Fatalf("expected 0 at expiry, got %d", got)
	}
	if got := RemainingSeconds(order, 1700000000+ReservationWindow-1); got != 1 {
		t.Fatalf("expected 1 just before expiry, got %d", got)
	}
	if got := RemainingSeconds(order, 1700000000+ReservationWindow+3600); got != 0 {
		t.Fatalf("expected 0 after expiry, got %d", got)
	}
}

func TestRemainingSecondsMalformedTimestamp(t *testing.T) {
	if got := RemainingSeconds(Order{}, 1700000000); got != 0 {
		t.Fatalf("expected 0 for missing timestamp, got %d", got)
	}
	if got := RemainingSeconds(Order{CreatedAtTimestamp: -5}, 1700000000); got != 0 {
		t.Fatalf("expected 0 for negative timestamp, got %d", got)
	}
}

func TestEpochSecondsTolerantDecode(t *testing.T) {
	cases := []struct {
		raw  string
		want EpochSeconds
	}{
		{`{"created_at_timestamp":1700000000}`, 1700000000},
		{`{"created_at_timestamp":"1700000000"}`, 1700000000},
		{`{"created_at_timestamp":null}`, 0},
		{`{"created_at_timestamp":"not-a-number"}`, 0},
		{`{}`, 0},
	}
	for _, c := range cases {
		var order Order
		if err := json.Unmarshal([]byte(c.raw), &order); err != nil {
			t.Fatalf("decode %s: %v", c.raw, err)
		}
		if order.CreatedAtTimestamp != c.want {
			t.Fatalf("decode %s: expected %d, got %d", c.raw, c.want, order.CreatedAtTimestamp)
		}
	}
}

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{900, "15:00"},
		{600, "10:00"},
		{61, "01:01"},
		{9, "00:09"},
		{0, "00:00"},
		{-3, "00:00"},
	}
	for _, c := range cases {
		if got := FormatCountdown(c.seconds); got != c.want {
			t.Fatalf("FormatCountdown(%d): expected %s, got %s", c.seconds, c.want, got)
		}
	}
}
