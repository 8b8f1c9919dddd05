package service

import (
	"github.com/MKhiriev/hoteldesk/internal/config"
	"github.com/MKhiriev/hoteldesk/internal/logger"
	"github.com/MKhiriev/hoteldesk/internal/store"
)

type Services struct {
	AuthService    AuthService
	InquiryService InquiryService
}

func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg, logger),
		InquiryService: NewInquiryService(repositories.HotelRepository, repositories.CounterRepository, cfg, logger),
	}
}
