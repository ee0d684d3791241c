package api

import (
	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/middleware"
	"github.com/ystemsrx/smart-shop-sub003/internal/service"
)

func GetMyCoupons(c *gin.Context) {
	coupons, err := service.Coupon.GetMine(middleware.GetSession(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, coupons)
}
