package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/hoteldesk/internal/logger"
	"github.com/MKhiriev/hoteldesk/internal/utils"
	"github.com/MKhiriev/hoteldesk/models"
)

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var hotel models.Hotel
	if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.InquiryService.Submit(ctx, hotel)
	if err != nil {
		log.Err(err).Msg("inquiry submit failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("id", saved.HotelID).Msg("inquiry successfully saved")

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	hotelID := chi.URLParam(r, "id")

	hotel, err := h.services.InquiryService.Get(ctx, hotelID)
	if err != nil {
		log.Err(err).Str("id", hotelID).Msg("inquiry lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, hotel, http.StatusOK)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	hotelID := chi.URLParam(r, "id")

	var patch models.HotelPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.InquiryService.Update(ctx, hotelID, patch)
	if err != nil {
		log.Err(err).Str("id", hotelID).Msg("inquiry update failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("id", updated.HotelID).Msg("inquiry successfully updated")

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	hotelID := chi.URLParam(r, "id")

	if err := h.services.InquiryService.Delete(ctx, hotelID); err != nil {
		log.Err(err).Str("id", hotelID).Msg("inquiry delete failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("id", hotelID).Msg("inquiry successfully deleted")

	utils.WriteJSON(w, models.MessageResponse{Message: "record deleted successfully"}, http.StatusOK)
}
