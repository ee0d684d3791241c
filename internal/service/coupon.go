package service

import (
	"github.com/ystemsrx/smart-shop-sub003/internal/session"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

var Coupon = new(CouponService)

type CouponService struct{}

// GetMine 获取当前用户持有的优惠券
func (s *CouponService) GetMine(sess session.Session) ([]types.Coupon, error) {
	var coupons []types.Coupon
	if err := upstream.API.Get(sess, "/api/coupons/mine", nil, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}
