package service

import (
	"github.com/ystemsrx/smart-shop-sub003/internal/session"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

var Lottery = new(LotteryService)

type LotteryService struct{}

// GetStatus 查询抽奖资格和奖池
// 下单完成后上游会给用户发抽奖机会
func (s *LotteryService) GetStatus(sess session.Session) (*types.LotteryStatus, error) {
	var st types.LotteryStatus
	if err := upstream.API.Get(sess, "/api/lottery/status", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Draw 抽一次奖，开奖逻辑全部在上游
func (s *LotteryService) Draw(sess session.Session) (*types.DrawResult, error) {
	var result types.DrawResult
	if err := upstream.API.Post(sess, "/api/lottery/draw", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
