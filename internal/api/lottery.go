package api

import (
	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/middleware"
	"github.com/ystemsrx/smart-shop-sub003/internal/service"
)

func GetLotteryStatus(c *gin.Context) {
	st, err := service.Lottery.GetStatus(middleware.GetSession(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, st)
}

func DrawLottery(c *gin.Context) {
	result, err := service.Lottery.Draw(middleware.GetSession(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, result)
}
