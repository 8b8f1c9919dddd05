package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hoteldesk/internal/config"
	"github.com/MKhiriev/hoteldesk/internal/logger"
	"github.com/MKhiriev/hoteldesk/internal/store"
	"github.com/MKhiriev/hoteldesk/models"
)

// hotelSequenceName is the counter key shared by every hotel record
// identifier allocation.
const hotelSequenceName = "hotel_id"

// inquiryService is the concrete implementation of InquiryService. It pairs
// the sequence allocator with the hotel record store: every submitted record
// gets a freshly allocated, formatted identifier before persistence.
type inquiryService struct {
	hotelRepository   store.HotelRepository
	counterRepository store.CounterRepository

	// idPrefix and idPadWidth control record identifier formatting
	// (e.g. prefix "CID" and width 4 produce "CID0004").
	idPrefix   string
	idPadWidth int

	logger *logger.Logger
}

// NewInquiryService constructs an InquiryService wired to the given
// repositories and identifier-formatting settings from cfg.
func NewInquiryService(hotelRepository store.HotelRepository, counterRepository store.CounterRepository, cfg config.App, logger *logger.Logger) InquiryService {
	return &inquiryService{
		hotelRepository:   hotelRepository,
		counterRepository: counterRepository,
		idPrefix:          cfg.RecordIDPrefix,
		idPadWidth:        cfg.RecordIDPadWidth,
		logger:            logger,
	}
}

// FormatRecordID renders a sequence value as a record identifier: constant
// prefix plus zero-padded decimal. Values wider than width simply widen the
// identifier; nothing is ever truncated.
func FormatRecordID(prefix string, width int, value int64) string {
	return fmt.Sprintf("%s%0*d", prefix, width, value)
}

// Submit allocates the next sequence value, formats it into the record
// identifier, persists the inquiry and returns the record as stored.
//
// If the insert fails after allocation the value is burned: the sequence
// only guarantees ordering, not density, so the gap is accepted.
func (s *inquiryService) Submit(ctx context.Context, hotel models.Hotel) (models.Hotel, error) {
	log := logger.FromContext(ctx)

	value, err := s.counterRepository.NextValue(ctx, hotelSequenceName)
	if err != nil {
		log.Err(err).Msg("sequence allocation failed")
		return models.Hotel{}, fmt.Errorf("sequence allocation failed: %w", err)
	}

	hotel.HotelID = FormatRecordID(s.idPrefix, s.idPadWidth, value)

	stored, err := s.hotelRepository.CreateHotel(ctx, hotel)
	if err != nil {
		log.Err(err).Str("hotel_id", hotel.HotelID).Msg("hotel record insert failed")
		return models.Hotel{}, fmt.Errorf("hotel record insert failed: %w", err)
	}

	return stored, nil
}

// Get retrieves a single record by its identifier.
func (s *inquiryService) Get(ctx context.Context, hotelID string) (models.Hotel, error) {
	return s.hotelRepository.FindHotelByID(ctx, hotelID)
}

// Update applies a merge patch to an existing record.
//
// An empty patch is rejected with ErrEmptyUpdate before the store is
// touched; otherwise only the fields present in the patch are overwritten.
func (s *inquiryService) Update(ctx context.Context, hotelID string, patch models.HotelPatch) (models.Hotel, error) {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		log.Debug().Str("hotel_id", hotelID).Msg("empty update rejected")
		return models.Hotel{}, ErrEmptyUpdate
	}

	return s.hotelRepository.UpdateHotel(ctx, hotelID, patch)
}

// Delete removes a record by its identifier.
func (s *inquiryService) Delete(ctx context.Context, hotelID string) error {
	return s.hotelRepository.DeleteHotel(ctx, hotelID)
}
