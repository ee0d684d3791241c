package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ystemsrx/smart-shop-sub003/internal/config"
	"github.com/ystemsrx/smart-shop-sub003/internal/middleware"
	"github.com/ystemsrx/smart-shop-sub003/internal/pkg/logger"
	"github.com/ystemsrx/smart-shop-sub003/internal/service"
	"github.com/ystemsrx/smart-shop-sub003/internal/status"
)

func GetOrders(c *gin.Context) {
	orders, err := service.Order.GetList(middleware.GetSession(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, orders)
}

func GetOrderDetail(c *gin.Context) {
	view, err := service.Order.GetDetail(middleware.GetSession(c), c.Param("order_no"))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, view)
}

// MarkOrderPaid 顾客扫码转账后点"我已付款"
func MarkOrderPaid(c *gin.Context) {
	view, err := service.Order.MarkPaid(middleware.GetSession(c), c.Param("order_no"))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, view)
}

var upgrader = websocket.Upgrader{
	// 前端与网关不同源，鉴权靠会话中间件
	CheckOrigin: func(r *http.Request) bool { return true },
}

type countdownFrame struct {
	UnifiedStatus    string `json:"unified_status"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	Countdown        string `json:"countdown"`
}

// OrderCountdownWS 支付页倒计时推送
// 按配置的间隔轮询上游快照重算剩余时间；订单离开未付款
// 状态或倒计时归零后连接自动关闭，页面收尾帧后刷新订单状态。
func OrderCountdownWS(c *gin.Context) {
	sess := middleware.GetSession(c)
	orderNo := c.Param("order_no")

	view, err := service.Order.GetDetail(sess, orderNo)
	if err != nil {
		Fail(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warnf("倒计时连接升级失败: %v", err)
		return
	}
	defer conn.Close()

	// 先推一帧当前状态，不用等第一个tick
	first := countdownFrame{
		UnifiedStatus:    view.UnifiedStatus,
		RemainingSeconds: view.RemainingSeconds,
		Countdown:        view.Countdown,
	}
	if err := conn.WriteJSON(first); err != nil {
		return
	}
	if first.UnifiedStatus != string(status.Unpaid) || first.RemainingSeconds == 0 {
		return
	}

	interval := time.Duration(config.GlobalConfig.Countdown.PollInterval) * time.Second
	poller := service.Order.NewReservationPoller(sess, orderNo, interval)

	// 客户端断开时停掉轮询
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				poller.Stop()
				return
			}
		}
	}()

	poller.Run(func(tick status.Tick) bool {
		frame := countdownFrame{
			UnifiedStatus:    string(tick.Unified),
			RemainingSeconds: tick.RemainingSeconds,
			Countdown:        tick.Countdown,
		}
		return conn.WriteJSON(frame) == nil
	})
}
