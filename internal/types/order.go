package types

import "github.com/ystemsrx/smart-shop-sub003/internal/status"

type OrderItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type ShippingInfo struct {
	Building string `json:"building"`
	Room     string `json:"room"`
	Contact  string `json:"contact"`
	Phone    string `json:"phone"`
}

// OrderSnapshot 上游返回的完整订单
type OrderSnapshot struct {
	status.Order
	Items        []OrderItem  `json:"items"`
	ShippingInfo ShippingInfo `json:"shipping_info"`
	Note         string       `json:"note"`
}

// OrderView 网关吐给页面的订单，快照加上推导出来的展示字段
// 统一状态和倒计时每次请求重新计算，从不落地
type OrderView struct {
	OrderSnapshot
	UnifiedStatus    string `json:"unified_status"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	Countdown        string `json:"countdown"`
}
