package ingest

import (
	"github.com/GuangSTrip/BenchAnnotate/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers ingestion routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/ingest", Post(deps))
}
