package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/api"
	"github.com/ystemsrx/smart-shop-sub003/internal/middleware"
	"github.com/ystemsrx/smart-shop-sub003/internal/service"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
)

func GetPaymentQRCodes(c *gin.Context) {
	qrcodes, err := service.AdminQRCode.GetList(middleware.GetSession(c))
	if err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, qrcodes)
}

func CreatePaymentQRCode(c *gin.Context) {
	var req types.SavePaymentQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "参数错误",
		})
		return
	}

	qrcode, err := service.AdminQRCode.Create(middleware.GetSession(c), req)
	if err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, qrcode)
}

// ActivatePaymentQRCode 启用指定二维码，其余自动停用
func ActivatePaymentQRCode(c *gin.Context) {
	qrcode, err := service.AdminQRCode.Activate(middleware.GetSession(c), c.Param("id"))
	if err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, qrcode)
}

func DeletePaymentQRCode(c *gin.Context) {
	if err := service.AdminQRCode.Delete(middleware.GetSession(c), c.Param("id")); err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, nil)
}
