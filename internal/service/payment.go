package service

import (
	"errors"

	"github.com/ystemsrx/smart-shop-sub003/internal/session"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

var Payment = new(PaymentService)

type PaymentService struct{}

// GetActiveQRCode 获取当前启用的收款二维码
// 顾客在支付页扫这张码转账，然后点"我已付款"
func (s *PaymentService) GetActiveQRCode(sess session.Session) (*types.PaymentQRCode, error) {
	var qrcode types.PaymentQRCode
	if err := upstream.API.Get(sess, "/api/payment-qrcodes/active", nil, &qrcode); err != nil {
		return nil, err
	}
	if qrcode.ImageURL == "" {
		return nil, errors.New("收款二维码未配置，请联系管理员")
	}
	return &qrcode, nil
}
