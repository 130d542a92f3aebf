//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package team

import (
	"context"

	"gorm.io/gorm"

	"github.com/deco-cx/gatekeeper/core"
)

// Repository is the interface for team repository
type Repository interface {
	Get(ctx context.Context, id uint) (core.Team, error)
	GetBySlug(ctx context.Context, slug string) (core.Team, error)
	Create(ctx context.Context, team *core.Team, owner string) error
	List(ctx context.Context) ([]core.Team, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new team repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Get(ctx context.Context, id uint) (core.Team, error) {
	ctx, span := tracer.Start(ctx, "Team.Repository.Get")
	defer span.End()

	var team core.Team
	if err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return core.Team{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Team{}, err
	}
	return team, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (core.Team, error) {
	ctx, span := tracer.Start(ctx, "Team.Repository.GetBySlug")
	defer span.End()

	var team core.Team
	if err := r.db.WithContext(ctx).First(&team, "slug = ?", slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return core.Team{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Team{}, err
	}
	return team, nil
}

// Create writes the team and the creator's owner grant in one transaction,
// so a team is never observable without an owner.
func (r *repository) Create(ctx context.Context, team *core.Team, owner string) error {
	ctx, span := tracer.Start(ctx, "Team.Repository.Create")
	defer span.End()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return tx.Create(&core.MemberRole{
			TeamID:    team.ID,
			Principal: owner,
			RoleID:    core.OwnerRoleID,
		}).Error
	})
}

func (r *repository) List(ctx context.Context) ([]core.Team, error) {
	ctx, span := tracer.Start(ctx, "Team.Repository.List")
	defer span.End()

	var teams []core.Team
	err := r.db.WithContext(ctx).Find(&teams).Error
	return teams, err
}
