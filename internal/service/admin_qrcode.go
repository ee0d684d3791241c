package service

import (
	"github.com/ystemsrx/smart-shop-sub003/internal/session"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

var AdminQRCode = new(AdminQRCodeService)

// AdminQRCodeService 收款二维码管理
// 同一时间只有一张码处于启用状态，顾客端只会看到启用的那张
type AdminQRCodeService struct{}

func (s *AdminQRCodeService) GetList(sess session.Session) ([]types.PaymentQRCode, error) {
	var qrcodes []types.PaymentQRCode
	if err := upstream.API.Get(sess, "/api/admin/payment-qrcodes", nil, &qrcodes); err != nil {
		return nil, err
	}
	return qrcodes, nil
}

func (s *AdminQRCodeService) Create(sess session.Session, req types.SavePaymentQRCodeRequest) (*types.PaymentQRCode, error) {
	var qrcode types.PaymentQRCode
	if err := upstream.API.Post(sess, "/api/admin/payment-qrcodes", req, &qrcode); err != nil {
		return nil, err
	}
	return &qrcode, nil
}

func (s *AdminQRCodeService) Activate(sess session.Session, id string) (*types.PaymentQRCode, error) {
	var qrcode types.PaymentQRCode
	if err := upstream.API.Post(sess, "/api/admin/payment-qrcodes/"+id+"/activate", nil, &qrcode); err != nil {
		return nil, err
	}
	return &qrcode, nil
}

func (s *AdminQRCodeService) Delete(sess session.Session, id string) error {
	return upstream.API.Delete(sess, "/api/admin/payment-qrcodes/"+id, nil)
}
