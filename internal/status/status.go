package status

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// 支付状态（上游商城API返回的原始值）
const (
	PaymentPending    = "pending"
	PaymentProcessing = "processing"
	PaymentSucceeded  = "succeeded"
	PaymentFailed     = "failed"
)

// 配送状态（仅在支付成功后有意义）
const (
	FulfillShipped   = "shipped"
	FulfillDelivered = "delivered"
)

// Unified 统一订单状态，页面上展示给用户的唯一标签
type Unified string

const (
	Unpaid     Unified = "未付款"
	Confirming Unified = "待确认"
	Dispatch   Unified = "待配送"
	Delivering Unified = "配送中"
	Completed  Unified = "已完成"
)

// ReservationWindow 未付款订单的保留时长（秒），超时后订单自动失效
const ReservationWindow int64 = 900

// EpochSeconds 容错的下单时间戳
// 上游偶尔会把时间戳给成字符串甚至null，解析失败时置0而不是让整个订单反序列化报错
type EpochSeconds int64

func (e *EpochSeconds) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*e = 0
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		*e = EpochSeconds(v)
		return nil
	}
	// 带引号的数字
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if v, err := strconv.ParseFloat(str, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			*e = EpochSeconds(v)
			return nil
		}
	}
	*e = 0
	return nil
}

// Order 状态推导所需的订单快照投影
// 字段均来自上游商城API的订单JSON，本地不存储、不修改
type Order struct {
	OrderNo            string       `json:"order_no"`
	PaymentStatus      string       `json:"payment_status"`
	Status             string       `json:"status"`
	CreatedAtTimestamp EpochSeconds `json:"created_at_timestamp"`
	TotalAmount        float64      `json:"total_amount"`
}

// Resolve 根据支付状态和配送状态推导统一状态
// 判断顺序很重要：支付状态优先于配送状态，
// 未确认付款的订单无论配送字段是什么都不能显示为配送中/已完成。
// 任何未识别或缺失的值都回落到未付款，保证列表页永远能渲染。
func Resolve(order Order) Unified {
	if order.PaymentStatus == PaymentProcessing {
		return Confirming
	}
	if order.PaymentStatus != PaymentSucceeded {
		// pending、failed、空值都按未付款处理
		return Unpaid
	}
	switch order.Status {
	case FulfillShipped:
		return Delivering
	case FulfillDelivered:
		return Completed
	}
	return Dispatch
}

// RemainingSeconds 计算未付款订单的剩余支付时间（秒）
// 下单时间缺失或非法时返回0，绝不panic，展示层永远拿到一个安全的值。
// 返回值随now单调不增，到期后恒为0。
func RemainingSeconds(order Order, now int64) int64 {
	if order.CreatedAtTimestamp <= 0 {
		return 0
	}
	remaining := int64(order.CreatedAtTimestamp) + ReservationWindow - now
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatCountdown 把剩余秒数格式化为 mm:ss 倒计时
func FormatCountdown(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
