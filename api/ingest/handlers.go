package ingest

import (
	"net/http"

	"github.com/GuangSTrip/BenchAnnotate/api/types"
	"github.com/gin-gonic/gin"
)

// Post ingests a remote video
// @Summary      Ingest a video
// @Description  Download the video behind a locator URL, mint a fresh video identity, and initialize its empty annotation ledger. The download blocks the request until it finishes.
// @Tags         ingest
// @Accept       json
// @Produce      json
// @Param        request body types.IngestRequest true "Video locator"
// @Success      200 {object} types.IngestResponse "Ingested video"
// @Failure      400 {object} types.ErrorResponse "Invalid locator"
// @Failure      502 {object} types.ErrorResponse "Download failed"
// @Router       /api/ingest [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.IngestRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		result, err := deps.VideoService.Ingest(c.Request.Context(), req.URL)
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.IngestResponse{
			Success:    true,
			VideoID:    result.VideoID,
			VideoPath:  result.VideoPath,
			VideoTitle: result.Title,
		})
	}
}
