package model

// Identity is the caller as asserted by the identity provider's token
type Identity struct {
	ID       string
	FullName string
	Email    string
	ImageURL string
}
