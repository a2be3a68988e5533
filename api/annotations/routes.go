package annotations

import (
	"github.com/GuangSTrip/BenchAnnotate/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers annotation-related routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/annotations", Create(deps))
	router.GET("/annotations", Get(deps))
}
