package model

// CredentialKind identifies which remote service a credential belongs to
type CredentialKind string

const (
	CredentialPhotoService       CredentialKind = "photo"
	CredentialWeatherService     CredentialKind = "weather"
	CredentialTranslationService CredentialKind = "translation"
)

// Credential is a user-supplied API key. An empty value means unconfigured.
type Credential struct {
	Kind  CredentialKind
	Value string
}

// IsConfigured reports whether the credential carries a value
func (c Credential) IsConfigured() bool {
	return c.Value != ""
}
