package service

import (
	"encoding/json"

	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/repository"
	"github.com/rumdien113/tiktok-api/internal/util"
)

type ReportService interface {
	CreateReport(req CreateReportRequest) (*model.Report, error)
	GetReportByID(id string) (*model.Report, error)
	GetReports() ([]*model.Report, error)
	GetReportsByTarget(targetType, targetID string) ([]*model.Report, error)
	UpdateReportStatus(id string, req UpdateReportStatusRequest) (*model.Report, error)
	DeleteReport(id string) error

	GetReportCounters() ([]*model.ReportCounter, error)
	GetReportCounter(targetType, targetID string) (*model.ReportCounter, error)
	// UpsertReportCounter creates the counter or overwrites its count.
	// Reports whether the row was created.
	UpsertReportCounter(req UpsertReportCounterRequest) (counter *model.ReportCounter, created bool, err error)
	DeleteReportCounter(targetType, targetID string) error
}

type CreateReportRequest struct {
	TargetID   string `json:"target_id" binding:"required,uuid4"`
	TargetType string `json:"target_type" binding:"required,oneof=post comment user"`
	UserID     string `json:"user_id" binding:"required,uuid4"`
	Reason     string `json:"reason" binding:"required,max=255"`
}

type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending resolved rejected"`
}

type UpsertReportCounterRequest struct {
	TargetID   string `json:"target_id" binding:"required,uuid4"`
	TargetType string `json:"target_type" binding:"required,oneof=post comment user"`
	Count      int64  `json:"count" binding:"min=0"`
}

// reportCreatedEvent is published on report creation and consumed by the
// counter worker.
type reportCreatedEvent struct {
	ReportID   string `json:"report_id"`
	TargetID   string `json:"target_id"`
	TargetType string `json:"target_type"`
}

type reportService struct {
	reportRepo  repository.ReportRepository
	counterRepo repository.ReportCounterRepository
	targets     *TargetResolver
	rabbitMQ    *util.RabbitMQClient
}

func NewReportService(
	reportRepo repository.ReportRepository,
	counterRepo repository.ReportCounterRepository,
	targets *TargetResolver,
	rabbitMQ *util.RabbitMQClient,
) ReportService {
	return &reportService{
		reportRepo:  reportRepo,
		counterRepo: counterRepo,
		targets:     targets,
		rabbitMQ:    rabbitMQ,
	}
}

// CreateReport files a report against a post, comment or user. New reports
// always start pending. The per-target counter is maintained asynchronously
// through the report.created event.
func (s *reportService) CreateReport(req CreateReportRequest) (*model.Report, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, apperr.Validation(util.ValidationMessage(err))
	}

	if err := s.targets.Validate(req.TargetType, req.TargetID,
		model.TargetTypePost, model.TargetTypeComment, model.TargetTypeUser); err != nil {
		return nil, err
	}

	report := &model.Report{
		TargetID:   req.TargetID,
		TargetType: req.TargetType,
		UserID:     req.UserID,
		Reason:     req.Reason,
		Status:     model.ReportStatusPending,
	}

	if err := s.reportRepo.Create(report); err != nil {
		return nil, apperr.FromDB(err, "report")
	}

	s.publishReportCreated(report)

	return report, nil
}

func (s *reportService) publishReportCreated(report *model.Report) {
	if s.rabbitMQ == nil {
		return
	}

	event := reportCreatedEvent{
		ReportID:   report.ID,
		TargetID:   report.TargetID,
		TargetType: report.TargetType,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return
	}

	// Counter maintenance is eventually consistent; a lost event is
	// reconcilable through the manual counter upsert.
	go func() {
		if err := s.rabbitMQ.Publish(util.ReportCreatedKey, body); err != nil {
			util.Sugar.Warnw("failed to publish report.created event",
				"report_id", report.ID, "error", err)
		}
	}()
}

func (s *reportService) GetReportByID(id string) (*model.Report, error) {
	report, err := s.reportRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "report")
	}
	return report, nil
}

func (s *reportService) GetReports() ([]*model.Report, error) {
	reports, err := s.reportRepo.FindAll()
	if err != nil {
		return nil, apperr.FromDB(err, "report")
	}
	return reports, nil
}

func (s *reportService) GetReportsByTarget(targetType, targetID string) ([]*model.Report, error) {
	if !isValidReportTargetType(targetType) {
		return nil, apperr.Validation("invalid target_type: " + targetType)
	}

	reports, err := s.reportRepo.FindByTarget(targetType, targetID)
	if err != nil {
		return nil, apperr.FromDB(err, "report")
	}
	return reports, nil
}

// UpdateReportStatus moves a report through the pending -> resolved/rejected
// state machine. Terminal states never change.
func (s *reportService) UpdateReportStatus(id string, req UpdateReportStatusRequest) (*model.Report, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, apperr.Validation(util.ValidationMessage(err))
	}

	report, err := s.reportRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromDB(err, "report")
	}

	if report.Status == req.Status {
		return report, nil
	}

	if !model.CanTransitionReportStatus(report.Status, req.Status) {
		return nil, apperr.Validation("cannot transition report from " + report.Status + " to " + req.Status)
	}

	report.Status = req.Status
	if err := s.reportRepo.Update(report); err != nil {
		return nil, apperr.FromDB(err, "report")
	}

	return report, nil
}

func (s *reportService) DeleteReport(id string) error {
	if err := s.reportRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "report")
	}
	return nil
}

func (s *reportService) GetReportCounters() ([]*model.ReportCounter, error) {
	counters, err := s.counterRepo.FindAll()
	if err != nil {
		return nil, apperr.FromDB(err, "report counter")
	}
	return counters, nil
}

func (s *reportService) GetReportCounter(targetType, targetID string) (*model.ReportCounter, error) {
	if !isValidReportTargetType(targetType) {
		return nil, apperr.Validation("invalid target_type: " + targetType)
	}

	counter, err := s.counterRepo.FindByTarget(targetType, targetID)
	if err != nil {
		return nil, apperr.FromDB(err, "report counter")
	}
	return counter, nil
}

func (s *reportService) UpsertReportCounter(req UpsertReportCounterRequest) (*model.ReportCounter, bool, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, false, apperr.Validation(util.ValidationMessage(err))
	}

	counter := &model.ReportCounter{
		TargetID:   req.TargetID,
		TargetType: req.TargetType,
		Count:      req.Count,
	}

	created, err := s.counterRepo.Upsert(counter)
	if err != nil {
		return nil, false, apperr.FromDB(err, "report counter")
	}

	// Reread so the response carries the stored updated_at
	stored, err := s.counterRepo.FindByTarget(req.TargetType, req.TargetID)
	if err != nil {
		return nil, false, apperr.FromDB(err, "report counter")
	}

	return stored, created, nil
}

func (s *reportService) DeleteReportCounter(targetType, targetID string) error {
	if !isValidReportTargetType(targetType) {
		return apperr.Validation("invalid target_type: " + targetType)
	}

	if err := s.counterRepo.DeleteByTarget(targetType, targetID); err != nil {
		return apperr.FromDB(err, "report counter")
	}
	return nil
}

func isValidReportTargetType(t string) bool {
	return t == model.TargetTypePost || t == model.TargetTypeComment || t == model.TargetTypeUser
}
