package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// envFiles are tried in order; the first one present wins. Process
// environment always takes precedence over file values.
var envFiles = []string{".env", ".env.local"}

// LoadEnv populates the environment from a local .env file when one
// exists. A missing file is not an error; a malformed one is.
func LoadEnv() error {
	for _, path := range envFiles {
		err := godotenv.Load(path)
		if err == nil {
			return nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return err
	}
	return nil
}
