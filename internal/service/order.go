package service

import (
	"fmt"
	"time"

	"github.com/ystemsrx/smart-shop-sub003/internal/session"
	"github.com/ystemsrx/smart-shop-sub003/internal/status"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

var Order = new(OrderService)

type OrderService struct{}

// Decorate 给上游订单快照补上统一状态和倒计时
// 每次调用重新推导，网关不缓存任何订单状态
func (s *OrderService) Decorate(snapshot types.OrderSnapshot, now time.Time) types.OrderView {
	view := types.OrderView{
		OrderSnapshot: snapshot,
		UnifiedStatus: string(status.Resolve(snapshot.Order)),
	}

	// 倒计时只对还没发起过支付的未付款订单有意义
	if view.UnifiedStatus == string(status.Unpaid) &&
		(snapshot.PaymentStatus == "" || snapshot.PaymentStatus == status.PaymentPending) {
		view.RemainingSeconds = status.RemainingSeconds(snapshot.Order, now.Unix())
		view.Countdown = status.FormatCountdown(view.RemainingSeconds)
	}

	return view
}

// GetList 获取当前用户的订单列表
func (s *OrderService) GetList(sess session.Session) ([]types.OrderView, error) {
	var snapshots []types.OrderSnapshot
	if err := upstream.API.Get(sess, "/api/orders", nil, &snapshots); err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]types.OrderView, 0, len(snapshots))
	for _, snapshot := range snapshots {
		views = append(views, s.Decorate(snapshot, now))
	}
	return views, nil
}

// GetDetail 获取订单详情
func (s *OrderService) GetDetail(sess session.Session, orderNo string) (*types.OrderView, error) {
	var snapshot types.OrderSnapshot
	if err := upstream.API.Get(sess, "/api/orders/"+orderNo, nil, &snapshot); err != nil {
		return nil, err
	}
	view := s.Decorate(snapshot, time.Now())
	return &view, nil
}

// MarkPaid 顾客扫码转账后手动确认已付款
// 上游会把payment_status推进到processing，等待人工核对
func (s *OrderService) MarkPaid(sess session.Session, orderNo string) (*types.OrderView, error) {
	var snapshot types.OrderSnapshot
	if err := upstream.API.Post(sess, "/api/orders/"+orderNo+"/mark-paid", nil, &snapshot); err != nil {
		return nil, err
	}
	view := s.Decorate(snapshot, time.Now())
	return &view, nil
}

// NewReservationPoller 创建订单的倒计时轮询器
// 每个tick都从上游取最新快照，订单付款或到期后轮询自动结束
func (s *OrderService) NewReservationPoller(sess session.Session, orderNo string, interval time.Duration) *status.Poller {
	return status.NewPoller(interval, func() (status.Order, error) {
		var snapshot types.OrderSnapshot
		if err := upstream.API.Get(sess, "/api/orders/"+orderNo, nil, &snapshot); err != nil {
			return status.Order{}, fmt.Errorf("获取订单快照失败: %v", err)
		}
		return snapshot.Order, nil
	})
}
