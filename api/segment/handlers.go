package segment

import (
	"net/http"

	"github.com/GuangSTrip/BenchAnnotate/api/types"
	"github.com/gin-gonic/gin"
)

// Post detects shot boundaries for an ingested video
// @Summary      Detect shots
// @Description  Run shot-boundary detection over an ingested video and return the shot intervals plus total duration. Shots are advisory and recomputed on every call.
// @Tags         segment
// @Accept       json
// @Produce      json
// @Param        request body types.SegmentRequest true "Video identity"
// @Success      200 {object} types.SegmentResponse "Detected shots"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Failure      502 {object} types.ErrorResponse "Detection failed"
// @Router       /api/segment [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SegmentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		result, err := deps.SegmentationService.Segment(c.Request.Context(), req.VideoID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.SegmentResponse{
			Success:  true,
			Shots:    result.Shots,
			Duration: result.Duration,
		})
	}
}
