package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/api"
	"github.com/ystemsrx/smart-shop-sub003/internal/middleware"
	"github.com/ystemsrx/smart-shop-sub003/internal/service"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
)

func GetCouponTemplates(c *gin.Context) {
	templates, err := service.AdminCoupon.GetList(middleware.GetSession(c))
	if err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, templates)
}

func CreateCouponTemplate(c *gin.Context) {
	var req types.SaveCouponTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "参数错误",
		})
		return
	}

	template, err := service.AdminCoupon.Create(middleware.GetSession(c), req)
	if err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, template)
}

func UpdateCouponTemplate(c *gin.Context) {
	var req types.SaveCouponTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "参数错误",
		})
		return
	}

	template, err := service.AdminCoupon.Update(middleware.GetSession(c), c.Param("id"), req)
	if err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, template)
}

func DeleteCouponTemplate(c *gin.Context) {
	if err := service.AdminCoupon.Delete(middleware.GetSession(c), c.Param("id")); err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, nil)
}
