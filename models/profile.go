package models

import "time"

// UserProfile is the one-to-one extension row of a [User]. All scalar fields
// are nullable; they are created lazily on the first profile update and merged
// on every subsequent one.
//
// Merge rule: a scalar field keeps its stored value when the incoming value is
// absent, while TuitionBeneficiaryStatus is always overwritten by the incoming
// value, even when that value is the default. The asymmetry is part of the
// service contract and covered by tests.
type UserProfile struct {
	// UserID is the owning foreign key; at most one profile row per user.
	UserID string `json:"user_id"`

	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contact_number"`
	Birthdate     *Date   `json:"birthdate"`

	// TuitionBeneficiaryStatus defaults to false and is replaced wholesale
	// on every update.
	TuitionBeneficiaryStatus bool `json:"tuition_beneficiary_status"`
}

// TableName returns the name of the database table
// associated with the UserProfile model.
func (p UserProfile) TableName() string {
	return "user_profiles"
}

// UserWithProfile is the merged read view returned by the user lookup path:
// the user's public fields joined with the profile fields via a left outer
// join, so every profile field is null when no profile row exists.
type UserWithProfile struct {
	UserID    string `json:"user_id"`
	StudentID string `json:"student_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contact_number"`
	Birthdate     *Date   `json:"birthdate"`

	// TuitionBeneficiaryStatus is nullable in the view: nil means the user
	// has no profile row yet.
	TuitionBeneficiaryStatus *bool `json:"tuition_beneficiary_status"`
}
