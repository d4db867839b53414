package model

import "encoding/json"

const (
	// SettingTypeSecurity holds the JWT signing secret.
	SettingTypeSecurity = "security"
	// SettingTypeCatalogSnapshot holds the full edited catalog as JSON.
	// Its presence overrides the bundled dataset entirely.
	SettingTypeCatalogSnapshot = "catalog_snapshot"
)

type SystemSetting struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type SystemSettingSecurity struct {
	JWTSecret string `json:"jwt_secret"`
}

func (s *SystemSettingSecurity) ToJSON() string {
	b, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return string(b)
}
