package store

const (
	createUser = `INSERT INTO users (username, email, password_digest)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_digest, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_digest, created_at
    FROM users
    WHERE username = $1;`

	// Single atomic increment-and-fetch. The upsert creates the counter at 1
	// on first use; afterwards every call bumps and returns the new value in
	// one statement, so concurrent callers can never observe the same value.
	nextCounterValue = `INSERT INTO counters (name, value)
    VALUES ($1, 1)
    ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
    RETURNING name, value;`

	createHotel = `INSERT INTO hotels (hotel_id, name, email, message)
    VALUES ($1, $2, $3, $4);`

	findHotelByID = `SELECT hotel_id, name, email, message
    FROM hotels
    WHERE hotel_id = $1;`

	deleteHotel = `DELETE FROM hotels
    WHERE hotel_id = $1;`
)
