package domain

import (
	"time"
)

// SignupCoins is the currency balance granted to every new account.
const SignupCoins = 5000

// User represents a registered account. ID is the login identifier the user
// picked at signup and the subject of every token issued for them.
type User struct {
	ID             string
	Name           string
	PasswordHash   string
	Coin           int64
	ProfilePicture *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
