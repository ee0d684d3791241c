package api

import (
	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/middleware"
	"github.com/ystemsrx/smart-shop-sub003/internal/service"
)

func GetProducts(c *gin.Context) {
	sess := middleware.GetSession(c)
	products, err := service.Product.GetList(sess, c.Query("category"))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, products)
}

func GetProduct(c *gin.Context) {
	sess := middleware.GetSession(c)
	product, err := service.Product.GetDetail(sess, c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, product)
}
