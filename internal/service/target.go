package service

import (
	"errors"

	"github.com/rumdien113/tiktok-api/internal/apperr"
	"github.com/rumdien113/tiktok-api/internal/model"
	"github.com/rumdien113/tiktok-api/internal/repository"

	"gorm.io/gorm"
)

// TargetResolver validates polymorphic (target_type, target_id) references.
// The storage engine cannot express a polymorphic foreign key, so existence
// is checked here through a dispatch table over the owning repositories.
type TargetResolver struct {
	lookups map[string]func(id string) error
}

func NewTargetResolver(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
) *TargetResolver {
	return &TargetResolver{
		lookups: map[string]func(id string) error{
			model.TargetTypePost: func(id string) error {
				_, err := postRepo.FindByID(id)
				return err
			},
			model.TargetTypeComment: func(id string) error {
				_, err := commentRepo.FindByID(id)
				return err
			},
			model.TargetTypeUser: func(id string) error {
				_, err := userRepo.FindByID(id)
				return err
			},
		},
	}
}

// Validate checks target_type membership in the allowed set and target
// existence. A missing target is a constraint violation, mirroring what a
// real foreign key would report.
func (t *TargetResolver) Validate(targetType, targetID string, allowed ...string) error {
	ok := false
	for _, a := range allowed {
		if targetType == a {
			ok = true
			break
		}
	}
	if !ok {
		return apperr.Validation("invalid target_type: " + targetType)
	}

	lookup, exists := t.lookups[targetType]
	if !exists {
		return apperr.Validation("invalid target_type: " + targetType)
	}

	if err := lookup(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Conflict(targetType + " target does not exist")
		}
		return apperr.Internal("failed to resolve target", err)
	}
	return nil
}
