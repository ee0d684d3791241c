package service

import (
	"sync"

	"github.com/ystemsrx/smart-shop-sub003/internal/pkg/logger"
	"github.com/ystemsrx/smart-shop-sub003/internal/session"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

var Settings = new(SettingsService)

// SettingsService 配送费设置
// 管理页的开关走两段式乐观更新：先改本地镜像让界面立即生效，
// 再请求上游；失败时用更新前留存的快照回滚镜像。
type SettingsService struct {
	mu     sync.Mutex
	mirror *types.DeliverySettings // 最近一次已知的设置快照
}

// Get 读取配送设置并刷新镜像
func (s *SettingsService) Get(sess session.Session) (*types.DeliverySettings, error) {
	var settings types.DeliverySettings
	if err := upstream.API.Get(sess, "/api/admin/delivery-settings", nil, &settings); err != nil {
		return nil, err
	}

	s.mu.Lock()
	copied := settings
	s.mirror = &copied
	s.mu.Unlock()

	return &settings, nil
}

// Save 保存配送设置，两段式提交
func (s *SettingsService) Save(sess session.Session, settings types.DeliverySettings) (*types.DeliverySettings, error) {
	prior := s.apply(settings)

	var saved types.DeliverySettings
	if err := upstream.API.Put(sess, "/api/admin/delivery-settings", settings, &saved); err != nil {
		s.restore(prior)
		return nil, err
	}

	s.apply(saved)
	return &saved, nil
}

// Toggle 切换配送开关，两段式提交
func (s *SettingsService) Toggle(sess session.Session) (*types.DeliverySettings, error) {
	s.mu.Lock()
	if s.mirror == nil {
		s.mu.Unlock()
		// 还没读过设置，先取一次当前值再切换
		if _, err := s.Get(sess); err != nil {
			return nil, err
		}
		s.mu.Lock()
	}
	prior := *s.mirror
	tentative := prior
	tentative.Enabled = !prior.Enabled
	s.mirror = &tentative
	s.mu.Unlock()

	var saved types.DeliverySettings
	err := upstream.API.Post(sess, "/api/admin/delivery-settings/toggle",
		map[string]bool{"enabled": tentative.Enabled}, &saved)
	if err != nil {
		logger.Warnf("配送开关更新失败，回滚本地状态: %v", err)
		s.restore(&prior)
		return nil, err
	}

	s.apply(saved)
	return &saved, nil
}

// Mirror 当前镜像，上游不可达时管理页的兜底读数
func (s *SettingsService) Mirror() *types.DeliverySettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mirror == nil {
		return nil
	}
	copied := *s.mirror
	return &copied
}

// apply 把新状态写进镜像，返回之前的快照
func (s *SettingsService) apply(settings types.DeliverySettings) *types.DeliverySettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	prior := s.mirror
	copied := settings
	s.mirror = &copied
	return prior
}

func (s *SettingsService) restore(prior *types.DeliverySettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mirror = prior
}
