package riderepo

import (
	"context"
	"errors"
	"fmt"

	"rides/internal/core/domain/model/kernel"
	"rides/internal/core/domain/model/ride"
	"rides/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mutableColumns are written by Update. Listing them makes GORM write zero
// values too, e.g. a distance of 0.
var mutableColumns = []string{"origin", "destination", "distance", "fare", "state"}

// GormRideRepository implements ports.RideRepository using GORM.
type GormRideRepository struct {
	db        *gorm.DB
	forUpdate bool
}

// NewGormRideRepository creates a repository on db, which may be a transaction.
func NewGormRideRepository(db *gorm.DB) *GormRideRepository {
	return &GormRideRepository{db: db}
}

// ForUpdate returns a copy whose Get locks the row until the surrounding
// transaction ends, so concurrent commands on one ride run one after another.
func (r *GormRideRepository) ForUpdate() *GormRideRepository {
	return &GormRideRepository{db: r.db, forUpdate: true}
}

// Add inserts a new ride.
func (r *GormRideRepository) Add(ctx context.Context, aggregate *ride.Ride) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert ride %s: %w", aggregate.ID(), err)
	}
	return nil
}

// Update writes the mutable columns of an existing ride.
func (r *GormRideRepository) Update(ctx context.Context, aggregate *ride.Ride) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RideDTO{}).
		Where("id = ?", dto.ID).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return fmt.Errorf("update ride %s: %w", aggregate.ID(), result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ride", aggregate.ID().String())
	}
	return nil
}

// Remove deletes an existing ride.
func (r *GormRideRepository) Remove(ctx context.Context, aggregate *ride.Ride) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RideDTO{}, "id = ?", aggregate.ID().Bytes())
	if result.Error != nil {
		return fmt.Errorf("delete ride %s: %w", aggregate.ID(), result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ride", aggregate.ID().String())
	}
	return nil
}

// Get retrieves a ride by ID.
func (r *GormRideRepository) Get(ctx context.Context, id kernel.UUID) (*ride.Ride, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if r.forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto RideDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ride", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns all rides in insertion order.
func (r *GormRideRepository) List(ctx context.Context) ([]*ride.Ride, error) {
	var dtos []RideDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// ListByState returns the rides in state, in insertion order.
func (r *GormRideRepository) ListByState(ctx context.Context, state ride.State) ([]*ride.Ride, error) {
	var dtos []RideDTO
	if err := r.db.WithContext(ctx).Where("state = ?", int(state)).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// CountByState returns the number of rides per state.
func (r *GormRideRepository) CountByState(ctx context.Context) (map[ride.State]int, error) {
	var rows []struct {
		State int
		Count int
	}
	err := r.db.WithContext(ctx).
		Model(&RideDTO{}).
		Select("state, count(*) AS count").
		Group("state").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[ride.State]int, len(rows))
	for _, row := range rows {
		counts[ride.State(row.State)] = row.Count
	}
	return counts, nil
}
