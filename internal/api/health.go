package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/service"
)

// HealthCheck 健康检查
// 网关本身无状态，顺带报告上游商城API的最近探测结果
func HealthCheck(c *gin.Context) {
	healthy, lastError, lastCheck := service.Monitor.Status()

	body := gin.H{
		"status":   "ok",
		"upstream": gin.H{"healthy": healthy},
	}
	if !lastCheck.IsZero() {
		body["upstream"].(gin.H)["last_check"] = lastCheck.Unix()
	}
	if lastError != "" {
		body["upstream"].(gin.H)["error"] = lastError
	}

	c.JSON(http.StatusOK, body)
}
