package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/lecolegal/intake/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// integer seconds in the file; they are converted to time.Duration when
// copied into the runtime Config.
type JsonConfig struct {
	BaseURL               string `json:"base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	StorePath             string `json:"store_path"`
	EmailDomain           string `json:"email_domain"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. Absent flag means no JSON is loaded; only fields present
// in the file override the current values. Read or unmarshal errors panic
// (the caller may recover if desired), matching the flag loader.
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

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.EmailDomain != "" {
		cfg.EmailDomain = jc.EmailDomain
	}
}
