package ports

// CredentialStore persists the single bearer token under one well-known
// location. Load returns an empty string, not an error, when no token
// is stored.
type CredentialStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}
