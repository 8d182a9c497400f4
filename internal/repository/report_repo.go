package repository

import (
	"github.com/rumdien113/tiktok-api/internal/model"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(report *model.Report) error
	FindByID(id string) (*model.Report, error)
	FindAll() ([]*model.Report, error)
	FindByTarget(targetType, targetID string) ([]*model.Report, error)
	Update(report *model.Report) error
	Delete(id string) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *model.Report) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) FindByID(id string) (*model.Report, error) {
	var report model.Report
	err := r.db.Where("id = ?", id).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) FindAll() ([]*model.Report, error) {
	var reports []*model.Report
	err := r.db.Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) FindByTarget(targetType, targetID string) ([]*model.Report, error) {
	var reports []*model.Report
	err := r.db.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) Update(report *model.Report) error {
	return r.db.Save(report).Error
}

func (r *reportRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.Report{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
