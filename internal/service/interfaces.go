package service

import (
	"context"

	"github.com/MKhiriev/hoteldesk/models"
)

// AuthService manages user credentials and the bearer-token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account, digesting the password before
	// persistence. A duplicate username surfaces as
	// store.ErrUserAlreadyExists.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the supplied credentials and returns the stored user
	// record on success. Unknown username and wrong password both fail with
	// ErrInvalidCredentials.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed bearer token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ValidateToken verifies a raw token string (signature, issuer, expiry,
	// subject) and returns the user record the subject refers to. A token
	// whose subject no longer exists fails with ErrTokenIsExpiredOrInvalid.
	ValidateToken(ctx context.Context, tokenString string) (models.User, error)

	// CurrentUser looks up a user record by username.
	CurrentUser(ctx context.Context, username string) (models.User, error)
}

// InquiryService manages hotel inquiry records and their allocated
// identifiers.
type InquiryService interface {
	// Submit allocates the next record identifier, persists the inquiry and
	// returns the record as stored.
	Submit(ctx context.Context, hotel models.Hotel) (models.Hotel, error)

	// Get retrieves a single record by its identifier.
	Get(ctx context.Context, hotelID string) (models.Hotel, error)

	// Update applies a merge patch to an existing record. Empty patches fail
	// with ErrEmptyUpdate before any store access.
	Update(ctx context.Context, hotelID string, patch models.HotelPatch) (models.Hotel, error)

	// Delete removes a record; a missing record fails with
	// store.ErrHotelNotFound.
	Delete(ctx context.Context, hotelID string) error
}
