package models

// Admin is the single administrator identity, loaded from configuration
// at startup. There is no user registry and no per-request storage.
type Admin struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never expose
}
