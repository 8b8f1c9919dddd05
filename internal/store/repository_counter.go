package store

import (
	"context"

	"github.com/MKhiriev/hoteldesk/internal/logger"
	"github.com/MKhiriev/hoteldesk/models"
)

// counterRepository is the PostgreSQL-backed implementation of
// [CounterRepository]. It manages named monotonic counters in the "counters"
// table.
type counterRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCounterRepository constructs a [CounterRepository] backed by the
// provided database connection and logger.
func NewCounterRepository(db *DB, logger *logger.Logger) CounterRepository {
	logger.Debug().Msg("creating counter repository")
	return &counterRepository{
		db:     db,
		logger: logger,
	}
}

// NextValue atomically increments the counter identified by name and returns
// the new value.
//
// The whole allocation is the single [nextCounterValue] upsert statement:
// the database performs the increment-and-fetch, so the returned values are
// strictly increasing and never repeat, no matter how many service instances
// share the counter. There is deliberately no read-then-write fallback and
// no in-process lock.
//
// A value allocated here that is never attached to a persisted record is
// simply burned; ordering is the guaranteed invariant, not density.
func (r *counterRepository) NextValue(ctx context.Context, name string) (int64, error) {
	log := logger.FromContext(ctx)

	var counter models.SequenceCounter
	row := r.db.QueryRowContext(ctx, nextCounterValue, name)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*counterRepository.NextValue").Str("sequence", name).Msg("error: row is nil")
		return 0, r.db.wrapDriverError(err)
	}

	if err := row.Scan(&counter.Name, &counter.Value); err != nil {
		log.Err(err).Str("func", "*counterRepository.NextValue").Str("sequence", name).Msg("error: scanning error")
		return 0, r.db.wrapDriverError(err)
	}

	return counter.Value, nil
}
