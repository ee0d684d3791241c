package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/middleware"
	"github.com/ystemsrx/smart-shop-sub003/internal/service"
	"github.com/ystemsrx/smart-shop-sub003/internal/types"
)

func GetCart(c *gin.Context) {
	cart, err := service.Cart.Get(middleware.GetSession(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, cart)
}

func AddCartItem(c *gin.Context) {
	var req types.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "参数错误",
		})
		return
	}

	cart, err := service.Cart.AddItem(middleware.GetSession(c), req)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, cart)
}

func UpdateCartItem(c *gin.Context) {
	var req types.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code": 400,
			"msg":  "参数错误",
		})
		return
	}

	cart, err := service.Cart.UpdateItem(middleware.GetSession(c), c.Param("id"), req)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, cart)
}

func RemoveCartItem(c *gin.Context) {
	cart, err := service.Cart.RemoveItem(middleware.GetSession(c), c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, cart)
}
