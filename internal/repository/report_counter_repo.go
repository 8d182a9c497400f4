package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReportCounterRepository interface {
	FindAll() ([]*model.ReportCounter, error)
	FindByTarget(targetType, targetID string) (*model.ReportCounter, error)
	// Upsert creates the counter row or overwrites count/updated_at of an
	// existing one. Reports whether the row was created.
	Upsert(counter *model.ReportCounter) (created bool, err error)
	// Increment atomically bumps the counter by one, creating the row at 1
	// when absent.
	Increment(targetType, targetID string) error
	DeleteByTarget(targetType, targetID string) error
}

type reportCounterRepository struct {
	db    *gorm.DB
	redis *util.RedisClient
}

const (
	reportCounterCachePrefix = "report:counter:"
	reportCounterExpiration  = 5 * time.Minute
)

func NewReportCounterRepository(db *gorm.DB, redis *util.RedisClient) ReportCounterRepository {
	return &reportCounterRepository{
		db:    db,
		redis: redis,
	}
}

func (r *reportCounterRepository) FindAll() ([]*model.ReportCounter, error) {
	var counters []*model.ReportCounter
	err := r.db.Find(&counters).Error
	if err != nil {
		return nil, err
	}
	return counters, nil
}

func (r *reportCounterRepository) FindByTarget(targetType, targetID string) (*model.ReportCounter, error) {
	cacheKey := r.cacheKey(targetType, targetID)
	if r.redis != nil {
		cached, err := r.redis.Get(cacheKey)
		if err == nil {
			var counter model.ReportCounter
			if err := json.Unmarshal([]byte(cached), &counter); err == nil {
				return &counter, nil
			}
		}
	}

	var counter model.ReportCounter
	err := r.db.Where("target_type = ? AND target_id = ?", targetType, targetID).
		First(&counter).Error
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		r.redis.Set(cacheKey, &counter, reportCounterExpiration)
	}

	return &counter, nil
}

func (r *reportCounterRepository) Upsert(counter *model.ReportCounter) (bool, error) {
	// Update first; a zero-row result means the key is absent and we insert.
	// A concurrent insert between the two steps surfaces as a duplicate key,
	// which we settle by retrying the update once.
	res := r.db.Model(&model.ReportCounter{}).
		Where("target_id = ? AND target_type = ?", counter.TargetID, counter.TargetType).
		Updates(map[string]interface{}{"count": counter.Count, "updated_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		r.invalidate(counter.TargetType, counter.TargetID)
		return false, nil
	}

	if err := r.db.Create(counter).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			res = r.db.Model(&model.ReportCounter{}).
				Where("target_id = ? AND target_type = ?", counter.TargetID, counter.TargetType).
				Updates(map[string]interface{}{"count": counter.Count, "updated_at": time.Now()})
			if res.Error != nil {
				return false, res.Error
			}
			r.invalidate(counter.TargetType, counter.TargetID)
			return false, nil
		}
		return false, err
	}

	r.invalidate(counter.TargetType, counter.TargetID)
	return true, nil
}

func (r *reportCounterRepository) Increment(targetType, targetID string) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "target_id"}, {Name: "target_type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("report_counters.count + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&model.ReportCounter{
		TargetID:   targetID,
		TargetType: targetType,
		Count:      1,
	}).Error
	if err != nil {
		return err
	}

	r.invalidate(targetType, targetID)
	return nil
}

func (r *reportCounterRepository) DeleteByTarget(targetType, targetID string) error {
	res := r.db.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Delete(&model.ReportCounter{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.invalidate(targetType, targetID)
	return nil
}

func (r *reportCounterRepository) cacheKey(targetType, targetID string) string {
	return fmt.Sprintf("%s%s:%s", reportCounterCachePrefix, targetType, targetID)
}

func (r *reportCounterRepository) invalidate(targetType, targetID string) {
	if r.redis == nil {
		return
	}
	r.redis.Delete(r.cacheKey(targetType, targetID))
}
