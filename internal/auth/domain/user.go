package domain

import "time"

// User is the record shape owned by the user store. PasswordHash is
// empty for accounts without a password set (e.g. created through a
// third-party identity); the credential verifier fails closed on it.
type User struct {
	ID                string
	Name              string
	Email             string
	PasswordHash      string
	PasswordChangedAt time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ChangedPasswordAfter reports whether the password was changed after
// the given token issue time. Both sides are truncated to whole
// seconds because JWT timestamps only carry second precision.
func (u *User) ChangedPasswordAfter(issuedAt time.Time) bool {
	return u.PasswordChangedAt.Truncate(time.Second).After(issuedAt.Truncate(time.Second))
}
