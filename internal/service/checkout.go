package service

import (
	"time"

	"github.com/ystemsrx/smart-shop-sub003/internal/session"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

var Checkout = new(CheckoutService)

type CheckoutService struct{}

// Submit 提交结算
// 上游扣库存、算价、建订单，返回新订单快照；
// 网关补上统一状态和15分钟支付倒计时后吐给页面。
func (s *CheckoutService) Submit(sess session.Session, req types.CheckoutRequest) (*types.OrderView, error) {
	var snapshot types.OrderSnapshot
	if err := upstream.API.Post(sess, "/api/checkout", req, &snapshot); err != nil {
		return nil, err
	}

	view := Order.Decorate(snapshot, time.Now())
	return &view, nil
}
