package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/hoteldesk/internal/logger"
	"github.com/MKhiriev/hoteldesk/models"
	"github.com/jackc/pgerrcode"
)

func newTestHotelRepo(t *testing.T) (*hotelRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &hotelRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func strPtr(s string) *string { return &s }

func hotelRows(h models.Hotel) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"hotel_id", "name", "email", "message"}).
		AddRow(h.HotelID, h.Name, h.Email, h.Message)
}

func TestCreateHotel_Success(t *testing.T) {
	repo, mock, db := newTestHotelRepo(t)
	defer db.Close()

	hotel := models.Hotel{HotelID: "CID0001", Name: "A", Email: "a@x.com", Message: "hi"}

	mock.ExpectExec("INSERT INTO hotels").
		WithArgs(hotel.HotelID, hotel.Name, hotel.Email, hotel.Message).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// the freshly inserted row is re-read so the caller sees the stored state
	mock.ExpectQuery("SELECT hotel_id").
		WithArgs(hotel.HotelID).
		WillReturnRows(hotelRows(hotel))

	stored, err := repo.CreateHotel(context.Background(), hotel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored != hotel {
		t.Errorf("expected stored record %+v, got %+v", hotel, stored)
	}
}

func TestCreateHotel_InsertFails(t *testing.T) {
	repo, mock, db := newTestHotelRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO hotels").
		WillReturnError(errors.New("insert failed"))

	_, err := repo.CreateHotel(context.Background(), models.Hotel{HotelID: "CID0001"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestCreateHotel_ReReadMisses(t *testing.T) {
	repo, mock, db := newTestHotelRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO hotels").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT hotel_id").
		WithArgs("CID0001").
		WillReturnRows(sqlmock.NewRows([]string{"hotel_id", "name", "email", "message"}))

	_, err := repo.CreateHotel(context.Background(), models.Hotel{HotelID: "CID0001"})
	if !errors.Is(err, ErrHotelNotSaved) {
		t.Fatalf("expected ErrHotelNotSaved, got %v", err)
	}
}

func TestFindHotelByID_NotFound(t *testing.T) {
	repo, mock, db := newTestHotelRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT hotel_id").
		WithArgs("CID9999").
		WillReturnRows(sqlmock.NewRows([]string{"hotel_id", "name", "email", "message"}))

	_, err := repo.FindHotelByID(context.Background(), "CID9999")
	if !errors.Is(err, ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound, got %v", err)
	}
}

func TestFindHotelByID_StoreUnavailable(t *testing.T) {
	repo, mock, db := newTestHotelRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT hotel_id").
		WithArgs("CID0001").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.FindHotelByID(context.Background(), "CID0001")
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestUpdateHotel_SingleField(t *testing.T) {
	repo, mock, db := newTestHotelRepo(t)
	defer db.Close()

	updated := models.Hotel{HotelID: "CID0001", Name: "A", Email: "a@x.com", Message: "bye"}

	// only the patched column appears in the SET clause
	mock.ExpectExec(`UPDATE hotels SET message = \$1 WHERE hotel_id = \$2`).
		WithArgs("bye", "CID0001").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT hotel_id").
		WithArgs("CID0001").
		WillReturnRows(hotelRows(updated))

	got, err := repo.UpdateHotel(context.Background(), "CID0001", models.HotelPatch{Message: strPtr("bye")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Message != "bye" {
		t.Errorf("expected message bye, got %s", got.Message)
	}
	if got.Name != "A" || got.Email != "a@x.com" {
		t.Errorf("unpatched fields changed: %+v", got)
	}
}

func TestUpdateHotel_AllFields(t *testing.T) {
	repo, mock, db := newTestHotelRepo(t)
	defer db.Close()

	updated := models.Hotel{HotelID: "CID0001", Name: "B", Email: "b@x.com", Message: "new"}

	mock.ExpectExec(`UPDATE hotels SET name = \$1, email = \$2, message = \$3 WHERE hotel_id = \$4`).
		WithArgs("B", "b@x.com", "new", "CID0001").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT hotel_id").
		WithArgs("CID0001").
		WillReturnRows(hotelRows(updated))

	got, err := repo.UpdateHotel(context.Background(), "CID0001", models.HotelPatch{
		Name:    strPtr("B"),
		Email:   strPtr("b@x.com"),
		Message: strPtr("new"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != updated {
		t.Errorf("expected %+v, got %+v", updated, got)
	}
}

func TestUpdateHotel_NotFound(t *testing.T) {
	repo, mock, db := newTestHotelRepo(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE hotels`).
		WithArgs("x", "CID9999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateHotel(context.Background(), "CID9999", models.HotelPatch{Name: strPtr("x")})
	if !errors.Is(err, ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound, got %v", err)
	}
}

func TestUpdateHotel_EmptyPatchFailsToBuild(t *testing.T) {
	repo, mock, db := newTestHotelRepo(t)
	defer db.Close()

	// no expectations: an empty patch must never reach the database
	_, err := repo.UpdateHotel(context.Background(), "CID0001", models.HotelPatch{})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected store access: %v", err)
	}
}

func TestDeleteHotel_Success(t *testing.T) {
	repo, mock, db := newTestHotelRepo(t)
	defer db.Close()

	hotel := models.Hotel{HotelID: "CID0001", Name: "A", Email: "a@x.com", Message: "hi"}

	mock.ExpectQuery("SELECT hotel_id").
		WithArgs(hotel.HotelID).
		WillReturnRows(hotelRows(hotel))
	mock.ExpectExec("DELETE FROM hotels").
		WithArgs(hotel.HotelID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteHotel(context.Background(), hotel.HotelID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteHotel_NotFound(t *testing.T) {
	repo, mock, db := newTestHotelRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT hotel_id").
		WithArgs("CID9999").
		WillReturnRows(sqlmock.NewRows([]string{"hotel_id", "name", "email", "message"}))

	err := repo.DeleteHotel(context.Background(), "CID9999")
	if !errors.Is(err, ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound, got %v", err)
	}
}

func TestBuildHotelUpdate_OnlyPatchedColumns(t *testing.T) {
	query, args, err := buildHotelUpdate("CID0001", models.HotelPatch{Email: strPtr("new@x.com")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE hotels SET email = $1 WHERE hotel_id = $2"
	if query != want {
		t.Errorf("expected query %q, got %q", want, query)
	}
	if len(args) != 2 || args[0] != "new@x.com" || args[1] != "CID0001" {
		t.Errorf("unexpected args: %v", args)
	}
}
