package models

// Hotel represents a single hotel inquiry record.
// HotelID is assigned by the sequence allocator at submit time and is
// immutable afterwards; the remaining fields can be patched in place.
type Hotel struct {
	// HotelID is the public record identifier in the form prefix + zero-padded
	// sequence value (e.g. "CID0004").
	HotelID string `json:"id"`

	// Name of the person submitting the inquiry.
	Name string `json:"name"`

	// Email is the sender's contact address.
	Email string `json:"email"`

	// Message is the free-text body of the inquiry.
	Message string `json:"message"`
}

// TableName returns the name of the database table
// associated with the Hotel model.
func (h Hotel) TableName() string {
	return "hotels"
}

// HotelPatch is a merge-patch update to an existing hotel inquiry record.
// Only non-nil fields are applied; absent fields are left untouched.
type HotelPatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Message *string `json:"message,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
// An empty patch is a client error and must be rejected before any
// store access.
func (p HotelPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Message == nil
}
