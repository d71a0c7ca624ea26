package config

import (
	"fmt"
	"os"
)

const configTemplate = `name = "glidectl"
addr = ":8507"
title = "Glider Flight Control Panel"
cors_origins = ["http://localhost:3000"]
control_period_ms = 10
disarm_on_shutdown = true
`

func Template() string {
	return configTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}
