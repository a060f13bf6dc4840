package jsonfile

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `json:"version"`
	Accounts []accountSchema `json:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Accounts == nil {
		s.Accounts = []accountSchema{}
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type accountSchema struct {
	Name      string `json:"name"`
	UUID      string `json:"uuid"`
	SecretRef string `json:"secret_ref"`
}
