package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

// Fail 统一错误出口
// 上游的业务错误原样透传状态码和提示，其余按500处理
func Fail(c *gin.Context, err error) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		statusCode := apiErr.Status
		if statusCode == 0 {
			statusCode = http.StatusInternalServerError
		}
		code := apiErr.Code
		if code == 0 {
			code = statusCode
		}
		c.JSON(statusCode, gin.H{
			"code": code,
			"msg":  apiErr.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"code": 500,
		"msg":  err.Error(),
	})
}

// OK 统一成功出口
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": data,
	})
}
