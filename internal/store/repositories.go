package store

import "github.com/MKhiriev/hoteldesk/internal/logger"

// Repositories bundles all persistence-layer interfaces for injection into
// the service layer.
type Repositories struct {
	UserRepository    UserRepository
	CounterRepository CounterRepository
	HotelRepository   HotelRepository
}

// NewRepositories constructs every repository against the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		CounterRepository: NewCounterRepository(db, logger),
		HotelRepository:   NewHotelRepository(db, logger),
	}
}
