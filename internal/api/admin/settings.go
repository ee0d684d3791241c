package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/api"
	"github.com/ystemsrx/smart-shop-sub003/internal/middleware"
	"github.com/ystemsrx/smart-shop-sub003/internal/service"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

func GetDeliverySettings(c *gin.Context) {
	settings, err := service.Settings.Get(middleware.GetSession(c))
	if err != nil {
		// 上游不可达时退回最近一次的镜像，管理页至少能看到读数；
		// 上游明确拒绝（比如权限）时不走兜底
		var apiErr *upstream.APIError
		if !errors.As(err, &apiErr) {
			if mirror := service.Settings.Mirror(); mirror != nil {
				api.OK(c, mirror)
				return
			}
		}
		api.Fail(c, err)
		return
	}
	api.OK(c, settings)
}

func SaveDeliverySettings(c *gin.Context) {
	var req types.DeliverySettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "参数错误",
		})
		return
	}

	saved, err := service.Settings.Save(middleware.GetSession(c), req)
	if err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, saved)
}

// ToggleDelivery 配送开关，失败时服务层会回滚本地镜像
func ToggleDelivery(c *gin.Context) {
	saved, err := service.Settings.Toggle(middleware.GetSession(c))
	if err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, saved)
}
