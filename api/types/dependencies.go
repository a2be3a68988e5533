package types

import (
	"github.com/GuangSTrip/BenchAnnotate/internal/database"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/catalog"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/ledger"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/segmentation"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/videos"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                  *database.DB
	VideoService        videos.Service
	SegmentationService segmentation.Service
	LedgerStore         ledger.Store
	CatalogService      catalog.Service
}
