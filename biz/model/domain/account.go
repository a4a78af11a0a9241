package domain

import "time"

// Account is the redacted view handed to callers. The secret never appears
// here in any form.
type Account struct {
	ID        uint
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountPatch carries a partial update. Nil fields are left untouched.
type AccountPatch struct {
	Name   *string
	Email  *string
	Secret *string
}
