// Package riderepo persists ride aggregates in PostgreSQL through GORM.
package riderepo

import (
	"rides/internal/core/domain/model/kernel"
	"rides/internal/core/domain/model/ride"

	"github.com/google/uuid"
)

// RideDTO is the "rides" table row. Seq is assigned by the database and
// keeps listings in insertion order.
type RideDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int64     `gorm:"autoIncrement;not null;uniqueIndex"`
	Origin      string    `gorm:"not null"`
	Destination string    `gorm:"not null"`
	Distance    float64   `gorm:"type:double precision;not null"`
	Fare        float64   `gorm:"type:double precision;not null"`
	State       int       `gorm:"type:smallint;not null;index"`
}

// TableName overrides GORM's default naming.
func (RideDTO) TableName() string {
	return "rides"
}

func fromDomain(r *ride.Ride) RideDTO {
	return RideDTO{
		ID:          r.ID().Bytes(),
		Origin:      r.Origin(),
		Destination: r.Destination(),
		Distance:    r.Distance(),
		Fare:        r.Fare(),
		State:       int(r.State()),
	}
}

// toDomain restores the aggregate. The stored fare column is informational;
// RestoreRide derives the fare from distance again.
func toDomain(dto RideDTO) (*ride.Ride, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	return ride.RestoreRide(id, dto.Origin, dto.Destination, dto.Distance, ride.State(dto.State))
}

func toDomainList(dtos []RideDTO) ([]*ride.Ride, error) {
	rides := make([]*ride.Ride, 0, len(dtos))
	for _, dto := range dtos {
		r, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rides = append(rides, r)
	}
	return rides, nil
}
