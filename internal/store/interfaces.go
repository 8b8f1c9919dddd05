package store

import (
	"context"

	"github.com/MKhiriev/hoteldesk/models"
)

// UserRepository persists user credential records. Username uniqueness is a
// database-level constraint: CreateUser reports a duplicate via
// [ErrUserAlreadyExists] even under concurrent registration.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// CounterRepository allocates monotonically increasing per-sequence values.
type CounterRepository interface {
	// NextValue atomically increments the named counter and returns the new
	// value, creating the counter at 1 on first use. No two callers ever
	// observe the same returned value for the same name.
	NextValue(ctx context.Context, name string) (int64, error)
}

// HotelRepository performs CRUD on hotel inquiry records keyed by their
// allocated hotel_id.
type HotelRepository interface {
	CreateHotel(ctx context.Context, hotel models.Hotel) (models.Hotel, error)
	FindHotelByID(ctx context.Context, hotelID string) (models.Hotel, error)
	UpdateHotel(ctx context.Context, hotelID string, patch models.HotelPatch) (models.Hotel, error)
	DeleteHotel(ctx context.Context, hotelID string) error
}

// ErrorClassificator tells transient database failures apart from permanent
// ones so repositories can surface [ErrStoreUnavailable] accurately.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
