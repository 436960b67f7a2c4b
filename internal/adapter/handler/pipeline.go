package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "github.com/pulsehq/meeting-relevance/internal/adapter/dto/pipeline"
	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
	"github.com/pulsehq/meeting-relevance/internal/domain/repositories"
	"github.com/pulsehq/meeting-relevance/internal/usecase/pipeline"
)

// PipelineHandler exposes the admin surface: trigger a run, inspect a
// stored meeting.
type PipelineHandler struct {
	service     pipeline.Service
	meetingRepo repositories.MeetingRepository
	logger      *zap.Logger
}

// NewPipelineHandler creates the pipeline handler
func NewPipelineHandler(service pipeline.Service, meetingRepo repositories.MeetingRepository, logger *zap.Logger) *PipelineHandler {
	return &PipelineHandler{
		service:     service,
		meetingRepo: meetingRepo,
		logger:      logger,
	}
}

// TriggerRun runs one pipeline pass synchronously and reports the outcome
func (h *PipelineHandler) TriggerRun(c echo.Context) error {
	report, err := h.service.Run(c.Request().Context())
	if err != nil {
		h.logger.Error("manually triggered run failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, dto.RunResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, dto.RunResponse{
		Relations:  report.Relations,
		Meetings:   report.Meetings,
		Skipped:    report.Skipped,
		Completed:  report.Completed,
		Notified:   report.Notified,
		Failed:     report.Failed,
		DurationMs: report.Duration.Milliseconds(),
	})
}

// GetMeeting returns the stored meeting for a transcript id
func (h *PipelineHandler) GetMeeting(c echo.Context) error {
	transcriptID := c.Param("transcript_id")
	if transcriptID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "transcript_id is required"})
	}

	meeting, err := h.meetingRepo.GetByTranscriptID(c.Request().Context(), transcriptID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrMeetingNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "meeting not found"})
		}
		h.logger.Error("meeting lookup failed",
			zap.String("transcript_id", transcriptID),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "lookup failed"})
	}

	return c.JSON(http.StatusOK, dto.MeetingResponse{
		TranscriptID:    meeting.TranscriptID,
		Title:           meeting.Title,
		OrganizationKey: meeting.OrganizationKey,
		Summary:         meeting.Summary,
		Status:          string(meeting.Status),
		CreatedAt:       meeting.CreatedAt,
		UpdatedAt:       meeting.UpdatedAt,
	})
}
