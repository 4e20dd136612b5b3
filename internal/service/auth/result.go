package auth

import "github.com/tjwls11/diary111/internal/domain"

// AuthResult is returned by login: the signed access token plus the user it
// belongs to.
type AuthResult struct {
	Token string
	User  *domain.User
}
