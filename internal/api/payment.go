package api

import (
	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/middleware"
	"github.com/ystemsrx/smart-shop-sub003/internal/service"
)

// GetPaymentQRCode 支付页展示的收款二维码
func GetPaymentQRCode(c *gin.Context) {
	qrcode, err := service.Payment.GetActiveQRCode(middleware.GetSession(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, qrcode)
}
