package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/hoteldesk/internal/logger"
	"github.com/MKhiriev/hoteldesk/models"
)

// hotelRepository is the PostgreSQL-backed implementation of
// [HotelRepository]. It performs CRUD on the "hotels" table keyed by the
// allocated hotel_id.
type hotelRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHotelRepository constructs a [HotelRepository] backed by the provided
// database connection and logger.
func NewHotelRepository(db *DB, logger *logger.Logger) HotelRepository {
	logger.Debug().Msg("creating hotel repository")
	return &hotelRepository{
		db:     db,
		logger: logger,
	}
}

// CreateHotel persists a new hotel inquiry record and re-reads it by its
// hotel_id so the caller receives exactly what the database stored, not
// merely the input echoed back.
func (r *hotelRepository) CreateHotel(ctx context.Context, hotel models.Hotel) (models.Hotel, error) {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createHotel, hotel.HotelID, hotel.Name, hotel.Email, hotel.Message); err != nil {
		log.Err(err).Str("func", "*hotelRepository.CreateHotel").Str("hotel_id", hotel.HotelID).Msg("error: insert failed")
		return models.Hotel{}, r.db.wrapDriverError(err)
	}

	stored, err := r.FindHotelByID(ctx, hotel.HotelID)
	if err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			return models.Hotel{}, ErrHotelNotSaved
		}
		return models.Hotel{}, err
	}

	return stored, nil
}

// FindHotelByID retrieves a single hotel inquiry record by its hotel_id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrHotelNotFound].
//   - Transient driver failures → wrapped [ErrStoreUnavailable].
func (r *hotelRepository) FindHotelByID(ctx context.Context, hotelID string) (models.Hotel, error) {
	log := logger.FromContext(ctx)

	var hotel models.Hotel
	row := r.db.QueryRowContext(ctx, findHotelByID, hotelID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*hotelRepository.FindHotelByID").Str("hotel_id", hotelID).Msg("error: row is nil")
		return models.Hotel{}, r.db.wrapDriverError(err)
	}

	if err := row.Scan(&hotel.HotelID, &hotel.Name, &hotel.Email, &hotel.Message); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Hotel{}, ErrHotelNotFound
		}

		log.Err(err).Str("func", "*hotelRepository.FindHotelByID").Str("hotel_id", hotelID).Msg("error: scanning error")
		return models.Hotel{}, err
	}

	return hotel, nil
}

// UpdateHotel applies a merge patch to the record identified by hotelID and
// returns the record as stored after the update. Only the non-nil fields of
// patch appear in the SET clause; absent fields are left untouched.
//
// Returns [ErrHotelNotFound] if no record matched hotelID. The caller is
// expected to have rejected empty patches before reaching the store.
func (r *hotelRepository) UpdateHotel(ctx context.Context, hotelID string, patch models.HotelPatch) (models.Hotel, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildHotelUpdate(hotelID, patch)
	if err != nil {
		log.Err(err).Str("func", "*hotelRepository.UpdateHotel").Str("hotel_id", hotelID).Msg("error: building update query")
		return models.Hotel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*hotelRepository.UpdateHotel").Str("hotel_id", hotelID).Msg("error: update failed")
		return models.Hotel{}, r.db.wrapDriverError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Hotel{}, r.db.wrapDriverError(err)
	}
	if affected == 0 {
		return models.Hotel{}, ErrHotelNotFound
	}

	return r.FindHotelByID(ctx, hotelID)
}

// DeleteHotel removes the record identified by hotelID.
//
// Existence is checked first so a missing record surfaces as
// [ErrHotelNotFound] rather than a silently successful no-op.
func (r *hotelRepository) DeleteHotel(ctx context.Context, hotelID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.FindHotelByID(ctx, hotelID); err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, deleteHotel, hotelID)
	if err != nil {
		log.Err(err).Str("func", "*hotelRepository.DeleteHotel").Str("hotel_id", hotelID).Msg("error: delete failed")
		return r.db.wrapDriverError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapDriverError(err)
	}
	if affected == 0 {
		// record vanished between the existence check and the delete
		return ErrHotelNotFound
	}

	return nil
}

// buildHotelUpdate assembles the dynamic UPDATE statement for a merge patch.
// A patch with no fields yields a squirrel error, which the caller wraps as
// [ErrBuildingSQLQuery]; the service layer rejects empty patches earlier, so
// hitting that path indicates a programming error rather than bad input.
func buildHotelUpdate(hotelID string, patch models.HotelPatch) (string, []any, error) {
	builder := sq.Update("hotels").PlaceholderFormat(sq.Dollar)

	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
	}
	if patch.Message != nil {
		builder = builder.Set("message", *patch.Message)
	}

	return builder.Where(sq.Eq{"hotel_id": hotelID}).ToSql()
}
