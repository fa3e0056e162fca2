package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/admingate/internal/flagx"
	"github.com/dmitrijs2005/admingate/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the session lifetime either as a string
// like "168h" or as integer nanoseconds.
type JsonConfig struct {
	EndpointAddr            string         `json:"endpoint_addr"`
	DatabaseDSN             string         `json:"database_dsn"`
	SecretKey               string         `json:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	CookieName              string         `json:"cookie_name"`
	MockAuth                *bool          `json:"mock_auth"`
	MockSharedSecret        string         `json:"mock_shared_secret"`
	AdminEmail              string         `json:"admin_email"`
	AdminPassword           string         `json:"admin_password"`
}

// parseJson overlays Config with values loaded from a JSON file located via
// the -c/-config flags. Absent file path means no overlay. Read or unmarshal
// errors panic; the intended usage is defaults -> parseJson -> parseFlags.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointAddr != "" {
		cfg.EndpointAddr = jc.EndpointAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.SessionValidityDuration.Duration != 0 {
		cfg.SessionValidityDuration = time.Duration(jc.SessionValidityDuration.Duration)
	}
	if jc.CookieName != "" {
		cfg.CookieName = jc.CookieName
	}
	if jc.MockAuth != nil {
		cfg.MockAuth = *jc.MockAuth
	}
	if jc.MockSharedSecret != "" {
		cfg.MockSharedSecret = jc.MockSharedSecret
	}
	if jc.AdminEmail != "" {
		cfg.AdminEmail = jc.AdminEmail
	}
	if jc.AdminPassword != "" {
		cfg.AdminPassword = jc.AdminPassword
	}
}
