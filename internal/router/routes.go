package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/api"
	"github.com/ystemsrx/smart-shop-sub003/internal/api/admin"
	"github.com/ystemsrx/smart-shop-sub003/internal/middleware"
)

// SetupRoutes 配置所有路由
func SetupRoutes(r *gin.Engine) {
	// 健康检查接口（不需要任何中间件）
	r.GET("/api/v1/health", api.HealthCheck)

	// 顾客端API路由
	setupAPIRoutes(r)

	// 管理员API路由
	setupAdminAPIRoutes(r)
}

// setupAPIRoutes 设置顾客端API路由
func setupAPIRoutes(r *gin.Engine) {
	apiGroup := r.Group("/api/v1")
	apiGroup.Use(middleware.Logger())
	apiGroup.Use(middleware.Recovery())
	apiGroup.Use(middleware.Cors())

	// 需要登录的路由，token由上游商城API签发
	authorized := apiGroup.Group("/")
	authorized.Use(middleware.Session())
	{
		// 商品浏览
		products := authorized.Group("/products")
		{
			products.GET("", api.GetProducts)
			products.GET("/:id", api.GetProduct)
		}

		// 购物车
		cart := authorized.Group("/cart")
		{
			cart.GET("", api.GetCart)
			cart.POST("/items", api.AddCartItem)
			cart.PUT("/items/:id", api.UpdateCartItem)
			cart.DELETE("/items/:id", api.RemoveCartItem)
		}

		// 收货地址
		authorized.GET("/buildings", api.GetBuildings)
		addresses := authorized.Group("/addresses")
		{
			addresses.GET("", api.GetAddresses)
			addresses.POST("", api.CreateAddress)
		}

		// 结算
		authorized.POST("/checkout", api.SubmitCheckout)

		// 订单
		orders := authorized.Group("/orders")
		{
			orders.GET("", api.GetOrders)
			orders.GET("/:order_no", api.GetOrderDetail)
			orders.POST("/:order_no/mark-paid", api.MarkOrderPaid)
			orders.GET("/:order_no/countdown/ws", api.OrderCountdownWS)
		}

		// 支付二维码
		authorized.GET("/payments/qrcode", api.GetPaymentQRCode)

		// 抽奖
		lottery := authorized.Group("/lottery")
		{
			lottery.GET("/status", api.GetLotteryStatus)
			lottery.POST("/draw", api.DrawLottery)
		}

		// 优惠券
		authorized.GET("/coupons/mine", api.GetMyCoupons)
	}
}

// setupAdminAPIRoutes 设置管理员API路由
func setupAdminAPIRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/v1/admin")
	adminGroup.Use(middleware.Logger())
	adminGroup.Use(middleware.Recovery())
	adminGroup.Use(middleware.Cors())
	adminGroup.Use(middleware.Session())
	adminGroup.Use(middleware.AdminAuth())
	{
		// 优惠券模板
		coupons := adminGroup.Group("/coupons")
		{
			coupons.GET("", admin.GetCouponTemplates)
			coupons.POST("", admin.CreateCouponTemplate)
			coupons.PUT("/:id", admin.UpdateCouponTemplate)
			coupons.DELETE("/:id", admin.DeleteCouponTemplate)
		}

		// 配送设置
		delivery := adminGroup.Group("/delivery-settings")
		{
			delivery.GET("", admin.GetDeliverySettings)
			delivery.PUT("", admin.SaveDeliverySettings)
			delivery.POST("/toggle", admin.ToggleDelivery)
		}

		// 收款二维码
		qrcodes := adminGroup.Group("/payment-qrcodes")
		{
			qrcodes.GET("", admin.GetPaymentQRCodes)
			qrcodes.POST("", admin.CreatePaymentQRCode)
			qrcodes.POST("/:id/activate", admin.ActivatePaymentQRCode)
			qrcodes.DELETE("/:id", admin.DeletePaymentQRCode)
		}
	}
}
