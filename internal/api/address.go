package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/middleware"
	"github.com/ystemsrx/smart-shop-sub003/internal/service"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
)

func GetBuildings(c *gin.Context) {
	buildings, err := service.Address.GetBuildings(middleware.GetSession(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, buildings)
}

func GetAddresses(c *gin.Context) {
	addresses, err := service.Address.GetList(middleware.GetSession(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, addresses)
}

func CreateAddress(c *gin.Context) {
	var req types.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "参数错误",
		})
		return
	}

	address, err := service.Address.Create(middleware.GetSession(c), req)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, address)
}
