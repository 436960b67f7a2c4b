package pipeline

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/pulsehq/meeting-relevance/internal/domain/entities"
	"github.com/pulsehq/meeting-relevance/internal/domain/repositories"
	"github.com/pulsehq/meeting-relevance/internal/usecase/notify"
	"github.com/pulsehq/meeting-relevance/pkg/config"
	"github.com/pulsehq/meeting-relevance/pkg/fireflies"
)

// Service runs the meeting relevance pipeline
type Service interface {
	Run(ctx context.Context) (*RunReport, error)
}

// RunReport summarizes one pipeline run
type RunReport struct {
	Relations int           `json:"relations"`
	Meetings  int           `json:"meetings"`
	Skipped   int           `json:"skipped"`
	Completed int           `json:"completed"`
	Notified  int           `json:"notified"`
	Failed    int           `json:"failed"`
	Duration  time.Duration `json:"duration"`

	mu sync.Mutex
}

func (r *RunReport) add(field *int, n int) {
	r.mu.Lock()
	*field += n
	r.mu.Unlock()
}

type pipelineService struct {
	goalRepo        repositories.GoalRepository
	integrationRepo repositories.IntegrationRepository
	meetingRepo     repositories.MeetingRepository
	source          Source
	classifier      *Classifier
	notifier        notify.Notifier
	logger          *zap.Logger

	goalType        string
	integrationType string
	workers         int
}

// NewService constructs the pipeline orchestrator
func NewService(
	goalRepo repositories.GoalRepository,
	integrationRepo repositories.IntegrationRepository,
	meetingRepo repositories.MeetingRepository,
	source Source,
	classifier *Classifier,
	notifier notify.Notifier,
	cfg *config.PipelineConfig,
	logger *zap.Logger,
) Service {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &pipelineService{
		goalRepo:        goalRepo,
		integrationRepo: integrationRepo,
		meetingRepo:     meetingRepo,
		source:          source,
		classifier:      classifier,
		notifier:        notifier,
		logger:          logger,
		goalType:        cfg.GoalType,
		integrationType: cfg.IntegrationType,
		workers:         workers,
	}
}

// Run executes one pipeline pass: load relations, fetch meetings, classify,
// persist, notify. Only the initial store reads abort the run; every other
// failure is contained to its credential or meeting.
func (s *pipelineService) Run(ctx context.Context) (*RunReport, error) {
	start := time.Now()
	report := &RunReport{}

	goals, err := s.goalRepo.ListByType(ctx, s.goalType)
	if err != nil {
		return nil, err
	}
	integrations, err := s.integrationRepo.ListByType(ctx, s.integrationType)
	if err != nil {
		return nil, err
	}

	relations := BuildRelations(goals, integrations)
	report.Relations = len(relations)

	// Relations are independent state machines keyed by transcript id, so
	// they run under a bounded worker pool. Meetings within a relation stay
	// sequential to keep the source call rate tame.
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	for _, rel := range relations {
		wg.Add(1)
		go func(rel entities.Relation) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			s.processRelation(ctx, rel, report)
		}(rel)
	}
	wg.Wait()

	report.Duration = time.Since(start)
	s.logger.Info("pipeline run finished",
		zap.Int("relations", report.Relations),
		zap.Int("meetings", report.Meetings),
		zap.Int("skipped", report.Skipped),
		zap.Int("completed", report.Completed),
		zap.Int("notified", report.Notified),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}

// processRelation fetches and processes all meetings for one credential.
// A source failure here is isolated: logged and skipped, the other
// credentials keep going.
func (s *pipelineService) processRelation(ctx context.Context, rel entities.Relation, report *RunReport) {
	transcripts, err := s.source.FetchMeetings(ctx, rel.Credential())
	if err != nil {
		s.logger.Error("skipping credential after source failure",
			zap.String("pulse_id", rel.OrganizationKey),
			zap.Error(err),
		)
		report.add(&report.Failed, 1)
		return
	}

	for _, t := range transcripts {
		s.processMeeting(ctx, rel, t, report)
	}
}

// processMeeting drives one meeting through its state machine:
// DISCOVERED -> PENDING_STORED -> CLASSIFIED -> COMPLETED_STORED ->
// NOTIFIED or SKIPPED.
func (s *pipelineService) processMeeting(ctx context.Context, rel entities.Relation, t fireflies.Transcript, report *RunReport) {
	report.add(&report.Meetings, 1)

	// Not yet relevance-checkable; skipped before anything is persisted.
	if t.Summary == nil || t.Summary.ShortSummary == "" {
		s.logger.Debug("skipping meeting without summary",
			zap.String("transcript_id", t.ID),
			zap.String("pulse_id", rel.OrganizationKey),
		)
		report.add(&report.Skipped, 1)
		return
	}

	meeting := entities.NewMeeting(t.ID, t.Title, rel.UserID, rel.OrganizationKey, t.Summary.ShortSummary)
	if details, err := json.Marshal(t.Summary); err == nil {
		meeting.Details = datatypes.JSON(details)
	}

	// PENDING first so in-flight work is observable.
	if err := s.meetingRepo.Upsert(ctx, meeting); err != nil {
		s.logger.Error("failed to store meeting as PENDING",
			zap.String("transcript_id", t.ID),
			zap.Error(err),
		)
		report.add(&report.Failed, 1)
		return
	}

	// Classification never aborts the meeting; the classifier fails closed.
	judgment := entities.Judgment{}
	if rel.HasGoals() {
		judgment = s.classifier.Classify(ctx, rel.Goals, t.Title, t.Summary.ShortSummary)
	}

	meeting.MarkCompleted(t.Summary.ShortSummary)

	// The COMPLETED write and the notification share no mutable state, so
	// they run as two independent tasks joined only for error logging.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.meetingRepo.Upsert(ctx, meeting); err != nil {
			s.logger.Error("failed to store meeting as COMPLETED",
				zap.String("transcript_id", t.ID),
				zap.Error(err),
			)
			report.add(&report.Failed, 1)
			return
		}
		report.add(&report.Completed, 1)
	}()

	if judgment.IsRelated {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.notifier.Notify(ctx, meeting, judgment); err != nil {
				s.logger.Error("notification failed",
					zap.String("transcript_id", t.ID),
					zap.Error(err),
				)
				return
			}
			report.add(&report.Notified, 1)
		}()
	}
	wg.Wait()
}
