package service

import (
	"github.com/ystemsrx/smart-shop-sub003/internal/session"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

var AdminCoupon = new(AdminCouponService)

// AdminCouponService 优惠券模板管理，发放逻辑在上游
type AdminCouponService struct{}

func (s *AdminCouponService) GetList(sess session.Session) ([]types.CouponTemplate, error) {
	var templates []types.CouponTemplate
	if err := upstream.API.Get(sess, "/api/admin/coupon-templates", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (s *AdminCouponService) Create(sess session.Session, req types.SaveCouponTemplateRequest) (*types.CouponTemplate, error) {
	var template types.CouponTemplate
	if err := upstream.API.Post(sess, "/api/admin/coupon-templates", req, &template); err != nil {
		return nil, err
	}
	return &template, nil
}

func (s *AdminCouponService) Update(sess session.Session, id string, req types.SaveCouponTemplateRequest) (*types.CouponTemplate, error) {
	var template types.CouponTemplate
	if err := upstream.API.Put(sess, "/api/admin/coupon-templates/"+id, req, &template); err != nil {
		return nil, err
	}
	return &template, nil
}

func (s *AdminCouponService) Delete(sess session.Session, id string) error {
	return upstream.API.Delete(sess, "/api/admin/coupon-templates/"+id, nil)
}
