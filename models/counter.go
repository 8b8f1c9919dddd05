package models

// SequenceCounter stores the last issued value for a named monotonic counter.
// Each allocation must return a strictly greater value than the previous one;
// the increment is performed as a single atomic upsert at the database level.
type SequenceCounter struct {
	// Name is the counter key (e.g. "hotel_id").
	Name string `json:"name"`

	// Value is the last issued sequence value. Monotonically non-decreasing.
	Value int64 `json:"value"`
}

// TableName returns the name of the database table
// associated with the SequenceCounter model.
func (c SequenceCounter) TableName() string {
	return "counters"
}
