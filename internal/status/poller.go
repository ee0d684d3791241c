package status

import "time"

// Tick 一次倒计时重算的结果
type Tick struct {
	Order            Order
	Unified          Unified
	RemainingSeconds int64
	Countdown        string
}

// Fetcher 获取最新订单快照，通常是一次上游API调用
type Fetcher func() (Order, error)

// Poller 倒计时轮询器
// 状态推导本身是纯函数，不持有定时器；由Poller按固定间隔
// 拉取最新快照并重算，把结果交给回调。
type Poller struct {
	interval time.Duration
	fetch    Fetcher
	stopChan chan struct{}
}

func NewPoller(interval time.Duration, fetch Fetcher) *Poller {
	return &Poller{
		interval: interval,
		fetch:    fetch,
		stopChan: make(chan struct{}),
	}
}

// Run 开始轮询，每个tick调用一次fn
// fn返回false、订单离开未付款状态或倒计时归零后自动结束。
// 拉取快照失败时跳过本次tick，不中断轮询。
func (p *Poller) Run(fn func(Tick) bool) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			order, err := p.fetch()
			if err != nil {
				continue
			}

			tick := Tick{
				Order:            order,
				Unified:          Resolve(order),
				RemainingSeconds: RemainingSeconds(order, time.Now().Unix()),
			}
			tick.Countdown = FormatCountdown(tick.RemainingSeconds)

			if !fn(tick) {
				return
			}

			// 订单已付款或保留时间已到，没有继续倒计时的必要
			if tick.Unified != Unpaid || tick.RemainingSeconds == 0 {
				return
			}

		case <-p.stopChan:
			return
		}
	}
}

// Stop 停止轮询
func (p *Poller) Stop() {
	close(p.stopChan)
}
