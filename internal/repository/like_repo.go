package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/util"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(like *model.Like) error
	FindByID(id string) (*model.Like, error)
	FindAll() ([]*model.Like, error)
	FindByTarget(targetType, targetID string) ([]*model.Like, error)
	FindByUserAndTarget(userID, targetType, targetID string) (*model.Like, error)
	CountByTarget(targetType, targetID string) (int64, error)
	DeleteByUserAndTarget(userID, targetType, targetID string) error
}

type likeRepository struct {
	db    *gorm.DB
	redis *util.RedisClient
}

const (
	likeByTargetCachePrefix = "like:target:"
	likeCountCachePrefix    = "like:count:"
	likeCacheExpiration     = 10 * time.Minute
)

func NewLikeRepository(db *gorm.DB, redis *util.RedisClient) LikeRepository {
	return &likeRepository{
		db:    db,
		redis: redis,
	}
}

// Create creates a new like and invalidates related caches
func (r *likeRepository) Create(like *model.Like) error {
	if err := r.db.Create(like).Error; err != nil {
		return err
	}

	if r.redis != nil {
		r.invalidateTargetCache(like.TargetType, like.TargetID)
	}

	return nil
}

func (r *likeRepository) FindByID(id string) (*model.Like, error) {
	var like model.Like
	err := r.db.Where("id = ?", id).First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) FindAll() ([]*model.Like, error) {
	var likes []*model.Like
	err := r.db.Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

// FindByTarget finds all likes for a target (post or comment)
func (r *likeRepository) FindByTarget(targetType, targetID string) ([]*model.Like, error) {
	cacheKey := fmt.Sprintf("%s%s:%s", likeByTargetCachePrefix, targetType, targetID)
	if r.redis != nil {
		cached, err := r.getListFromCache(cacheKey)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	var likes []*model.Like
	err := r.db.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("created_at DESC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		r.cacheLikeList(cacheKey, likes)
	}

	return likes, nil
}

// FindByUserAndTarget finds a like by its composite unique key
func (r *likeRepository) FindByUserAndTarget(userID, targetType, targetID string) (*model.Like, error) {
	var like model.Like
	err := r.db.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// CountByTarget counts likes for a target
func (r *likeRepository) CountByTarget(targetType, targetID string) (int64, error) {
	cacheKey := fmt.Sprintf("%s%s:%s", likeCountCachePrefix, targetType, targetID)
	if r.redis != nil {
		cached, err := r.redis.Get(cacheKey)
		if err == nil {
			var count int64
			if _, err := fmt.Sscanf(cached, "%d", &count); err == nil {
				return count, nil
			}
		}
	}

	var count int64
	err := r.db.Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	if r.redis != nil {
		r.redis.Set(cacheKey, fmt.Sprintf("%d", count), likeCacheExpiration)
	}

	return count, nil
}

// DeleteByUserAndTarget deletes a like by its composite unique key
func (r *likeRepository) DeleteByUserAndTarget(userID, targetType, targetID string) error {
	res := r.db.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Delete(&model.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if r.redis != nil {
		r.invalidateTargetCache(targetType, targetID)
	}

	return nil
}

// Cache helpers
func (r *likeRepository) cacheLikeList(key string, likes []*model.Like) {
	likesJSON, err := json.Marshal(likes)
	if err != nil {
		return
	}
	r.redis.Set(key, string(likesJSON), likeCacheExpiration)
}

func (r *likeRepository) getListFromCache(key string) ([]*model.Like, error) {
	cached, err := r.redis.Get(key)
	if err != nil {
		return nil, err
	}

	var likes []*model.Like
	if err := json.Unmarshal([]byte(cached), &likes); err != nil {
		return nil, err
	}

	return likes, nil
}

func (r *likeRepository) invalidateTargetCache(targetType, targetID string) {
	r.redis.Delete(fmt.Sprintf("%s%s:%s", likeByTargetCachePrefix, targetType, targetID))
	r.redis.Delete(fmt.Sprintf("%s%s:%s", likeCountCachePrefix, targetType, targetID))
}
