package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/restree/validation"
)

const envPrefix = "RESTREE"

// Load reads and validates a client configuration file. A .env file in the
// same directory is loaded into the process environment first when present,
// and RESTREE_-prefixed environment variables override scalar file values.
func Load(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("config: path is required")
	}

	loadDotEnv(filepath.Dir(path))

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := v.Unmarshal(&f, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		endpointItemHook(),
	))); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}

	// AutomaticEnv does not apply to keys absent from the file; pick up the
	// root override explicitly so RESTREE_ROOT always wins.
	if root := os.Getenv(envPrefix + "_ROOT"); root != "" {
		f.Root = root
	}

	if err := validation.Validate(&f); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &f, nil
}

// endpointItemHook lets an endpoints list item be a plain string: "users"
// decodes as {resource: users}, i.e. a simple declaration.
func endpointItemHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() == reflect.String && to == reflect.TypeOf(EndpointFile{}) {
			return map[string]any{"resource": data}, nil
		}
		return data, nil
	}
}

// loadDotEnv loads dir/.env into the environment if it exists. Existing
// variables are never overwritten.
func loadDotEnv(dir string) {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}
