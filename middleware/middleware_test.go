package middleware

import (
	"github.com/diljithmon170/GK-Group/logger"
	"github.com/gin-gonic/gin"
)

func init() {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
}
