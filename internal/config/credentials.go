package config

import "github.com/ytget/inspiration/internal/model"

// FirstConfigured returns the first configured credential among sources,
// so keys from the settings dialog win over keys from the environment.
type FirstConfigured []Credentials

// Credential implements Credentials
func (f FirstConfigured) Credential(kind model.CredentialKind) model.Credential {
	for _, src := range f {
		if c := src.Credential(kind); c.IsConfigured() {
			return c
		}
	}
	return model.Credential{Kind: kind}
}
