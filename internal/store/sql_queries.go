package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/campuskit/auth-service/models"
)

// psql is the shared statement builder configured for PostgreSQL-style
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Hand-written queries for the fixed-shape statements. Dynamic statements
// (conflict lookup, profile upsert) are built with squirrel below.
const (
	createUser = `INSERT INTO users (user_id, student_id, username, email, password_hash, role)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING user_id, student_id, username, email, password_hash, role, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, student_id, username, email, password_hash, role, created_at, updated_at
FROM users
WHERE email = $1;`

	findUserByID = `SELECT user_id, student_id, username, email, password_hash, role, created_at, updated_at
FROM users
WHERE user_id = $1;`

	getUserWithProfile = `SELECT u.user_id, u.student_id, u.username, u.email, u.role, u.created_at, u.updated_at,
       p.first_name, p.last_name, p.address, p.contact_number, p.birthdate, p.tuition_beneficiary_status
FROM users u
LEFT JOIN user_profiles p ON p.user_id = u.user_id
WHERE u.user_id = $1;`

	insertFailedLogin = `INSERT INTO failed_login_attempts (id, user_id, attempt_time, ip_address)
VALUES ($1, $2, $3, $4);`

	insertAuthToken = `INSERT INTO auth_tokens (token_id, user_id, token, expires_at)
VALUES ($1, $2, $3, $4);`

	findAuthToken = `SELECT token_id, user_id, token, expires_at, created_at
FROM auth_tokens
WHERE token = $1;`

	deleteAuthTokensForUser = `DELETE FROM auth_tokens WHERE user_id = $1;`
)

// buildFindConflictingUser produces a lookup matching any user that collides
// with the given natural keys. A single OR query keeps the uniqueness check
// to one round trip.
func buildFindConflictingUser(studentID, username, email string) (string, []any, error) {
	return psql.
		Select("user_id", "student_id", "username", "email", "password_hash", "role", "created_at", "updated_at").
		From(models.User{}.TableName()).
		Where(sq.Or{
			sq.Eq{"student_id": studentID},
			sq.Eq{"username": username},
			sq.Eq{"email": email},
		}).
		Limit(1).
		ToSql()
}

// buildUpsertProfile produces the create-or-merge statement for a profile row.
//
// Scalar columns merge: an absent (NULL) incoming value keeps the stored one.
// tuition_beneficiary_status is overwritten unconditionally, so an incoming
// false clears a stored true.
func buildUpsertProfile(profile models.UserProfile) (string, []any, error) {
	return psql.
		Insert(models.UserProfile{}.TableName()).
		Columns("user_id", "first_name", "last_name", "address", "contact_number", "birthdate", "tuition_beneficiary_status").
		Values(profile.UserID, profile.FirstName, profile.LastName, profile.Address, profile.ContactNumber, profile.Birthdate, profile.TuitionBeneficiaryStatus).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
    first_name = COALESCE(EXCLUDED.first_name, user_profiles.first_name),
    last_name = COALESCE(EXCLUDED.last_name, user_profiles.last_name),
    address = COALESCE(EXCLUDED.address, user_profiles.address),
    contact_number = COALESCE(EXCLUDED.contact_number, user_profiles.contact_number),
    birthdate = COALESCE(EXCLUDED.birthdate, user_profiles.birthdate),
    tuition_beneficiary_status = EXCLUDED.tuition_beneficiary_status
RETURNING user_id, first_name, last_name, address, contact_number, birthdate, tuition_beneficiary_status`).
		ToSql()
}
