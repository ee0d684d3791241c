package service

import (
	"sync"
	"time"

	"github.com/ystemsrx/smart-shop-sub003/internal/config"
	"github.com/ystemsrx/smart-shop-sub003/internal/pkg/logger"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

// MonitorService 上游健康监控
// 网关自己无状态，可用性完全取决于上游商城API，
// 定期探测一次并把结果暴露给健康检查接口。
type MonitorService struct {
	mu        sync.RWMutex
	healthy   bool
	lastError string
	lastCheck time.Time
	stopChan  chan struct{}
}

var Monitor = &MonitorService{
	stopChan: make(chan struct{}),
}

// Start 启动后台探测
func (s *MonitorService) Start() {
	go s.probeLoop()
}

// Stop 停止探测
func (s *MonitorService) Stop() {
	close(s.stopChan)
}

func (s *MonitorService) probeLoop() {
	cfg := config.GlobalConfig.Upstream
	interval := time.Duration(cfg.ProbeInterval) * time.Second

	// 启动时先探一次，不然首个interval内健康检查全是未知状态
	s.probeOnce(cfg.ProbePath)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.probeOnce(cfg.ProbePath)
		case <-s.stopChan:
			return
		}
	}
}

func (s *MonitorService) probeOnce(path string) {
	err := upstream.API.Probe(path)

	s.mu.Lock()
	s.lastCheck = time.Now()
	if err != nil {
		if s.healthy {
			logger.Warnf("上游商城API探测失败: %v", err)
		}
		s.healthy = false
		s.lastError = err.Error()
	} else {
		if !s.healthy {
			logger.Info("上游商城API恢复正常")
		}
		s.healthy = true
		s.lastError = ""
	}
	s.mu.Unlock()
}

// Status 当前上游状态
func (s *MonitorService) Status() (healthy bool, lastError string, lastCheck time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.healthy, s.lastError, s.lastCheck
}
