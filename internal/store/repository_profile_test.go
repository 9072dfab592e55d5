package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/campuskit/auth-service/internal/logger"
	"github.com/campuskit/auth-service/models"
)

var profileColumns = []string{"user_id", "first_name", "last_name", "address", "contact_number", "birthdate", "tuition_beneficiary_status"}

func newTestProfileRepo(t *testing.T) (*profileRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	repo := &profileRepository{
		db:     db,
		logger: logger.Nop(),
	}
	return repo, mock
}

func strPtr(s string) *string { return &s }

func TestUpsertProfile_Insert(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	ctx := context.Background()
	profile := models.UserProfile{
		UserID:                   "u-1",
		FirstName:                strPtr("John"),
		LastName:                 strPtr("Doe"),
		TuitionBeneficiaryStatus: true,
	}

	rows := sqlmock.
		NewRows(profileColumns).
		AddRow("u-1", "John", "Doe", nil, nil, nil, true)

	mock.ExpectQuery("INSERT INTO user_profiles (.+) ON CONFLICT \\(user_id\\) DO UPDATE SET").
		WithArgs("u-1", profile.FirstName, profile.LastName, nil, nil, nil, true).
		WillReturnRows(rows)

	saved, err := repo.UpsertProfile(ctx, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.FirstName == nil || *saved.FirstName != "John" {
		t.Errorf("expected first name John, got %v", saved.FirstName)
	}
	if !saved.TuitionBeneficiaryStatus {
		t.Error("expected tuition beneficiary status true")
	}
}

func TestUpsertProfile_MergeKeepsStoredScalars(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	ctx := context.Background()
	// only the address is supplied; the stored row already has names
	profile := models.UserProfile{
		UserID:  "u-1",
		Address: strPtr("12 Campus Way"),
	}

	rows := sqlmock.
		NewRows(profileColumns).
		AddRow("u-1", "John", "Doe", "12 Campus Way", nil, nil, false)

	mock.ExpectQuery("INSERT INTO user_profiles (.+) ON CONFLICT \\(user_id\\) DO UPDATE SET").
		WithArgs("u-1", nil, nil, profile.Address, nil, nil, false).
		WillReturnRows(rows)

	saved, err := repo.UpsertProfile(ctx, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.FirstName == nil || *saved.FirstName != "John" {
		t.Errorf("expected stored first name John to survive merge, got %v", saved.FirstName)
	}
	if saved.Address == nil || *saved.Address != "12 Campus Way" {
		t.Errorf("expected updated address, got %v", saved.Address)
	}
	if saved.TuitionBeneficiaryStatus {
		t.Error("expected tuition beneficiary status to be overwritten to false")
	}
}

func TestUpsertProfile_ExecError(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	ctx := context.Background()
	profile := models.UserProfile{UserID: "u-1"}

	mock.ExpectQuery("INSERT INTO user_profiles").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.UpsertProfile(ctx, profile)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
