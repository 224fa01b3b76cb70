package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into the provided configuration struct.
//
// The first call attempts to load a .env file from the working directory;
// a missing file is not an error. Parsing honors `env` and `envDefault`
// struct tags.
//
// Example:
//
//	type Paths struct {
//		RolesFile string `env:"ROLES_FILE" envDefault:"/etc/workstation/roles.yaml"`
//	}
//
//	var paths Paths
//	if err := config.Load(&paths); err != nil {
//	    // Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
