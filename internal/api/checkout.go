package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/middleware"
	"github.com/ystemsrx/smart-shop-sub003/internal/service"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
)

// SubmitCheckout 提交结算，成功后返回带倒计时的新订单
func SubmitCheckout(c *gin.Context) {
	var req types.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "参数错误",
		})
		return
	}

	view, err := service.Checkout.Submit(middleware.GetSession(c), req)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, view)
}
