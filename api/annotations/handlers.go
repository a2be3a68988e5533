package annotations

import (
	"net/http"

	"github.com/GuangSTrip/BenchAnnotate/api/types"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/ledger"
	apperrors "github.com/GuangSTrip/BenchAnnotate/pkg/errors"
	"github.com/gin-gonic/gin"
)

// Create appends a new annotation to a video's ledger
// @Summary      Save an annotation
// @Description  Validate and append one timestamped multiple-choice question to the video's annotation ledger. Every absent required field is named in the error.
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        request body types.AnnotationRequest true "Annotation fields"
// @Success      201 {object} types.AnnotationCreatedResponse "Created annotation"
// @Failure      400 {object} types.ErrorResponse "Missing required fields"
// @Failure      404 {object} types.ErrorResponse "Ledger not found"
// @Router       /api/annotations [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AnnotationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if req.VideoID == "" {
			types.SendError(c, apperrors.MissingFields([]string{"video_id"}))
			return
		}

		questionID, err := deps.LedgerStore.Append(c.Request.Context(), req.VideoID, ledger.AppendFields{
			StartTime:     req.StartTime,
			StopTime:      req.StopTime,
			Question:      req.Question,
			AnswerChoices: req.AnswerChoices,
			CorrectAnswer: req.CorrectAnswer,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusCreated, types.AnnotationCreatedResponse{
			Success:    true,
			QuestionID: questionID,
		})
	}
}

// Get lists annotations for one video, or all videos when no id is given
// @Summary      List annotations
// @Description  With video_id: every annotation of that video in write order, plus the media path (null if the file is gone). Without video_id: every known video with its annotation count.
// @Tags         annotations
// @Produce      json
// @Param        video_id query string false "Video identity"
// @Success      200 {object} types.VideoAnnotationsResponse "Annotations for one video"
// @Failure      404 {object} types.ErrorResponse "Ledger not found"
// @Router       /api/annotations [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID := c.Query("video_id")
		if videoID == "" {
			listVideos(c, deps)
			return
		}

		records, err := deps.LedgerStore.ReadAll(c.Request.Context(), videoID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		var videoPath *string
		if deps.VideoService.MediaExists(videoID) {
			p := deps.VideoService.PublicPath(videoID)
			videoPath = &p
		}

		c.JSON(http.StatusOK, types.VideoAnnotationsResponse{
			VideoID:     videoID,
			VideoPath:   videoPath,
			Annotations: records,
		})
	}
}

func listVideos(c *gin.Context, deps *types.Dependencies) {
	videos, err := deps.CatalogService.ListVideos(c.Request.Context())
	if err != nil {
		types.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.VideoListResponse{Videos: videos})
}
