// Package config assembles service settings from an optional dotenv file and
// the process environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	libmanager "github.com/lim-bo/songscatalog/internal/libManager"
)

const (
	SeedFiles    = "files"
	SeedPostgres = "postgres"
)

type Config struct {
	Host       string
	Port       string
	SeedsDir   string
	SeedSource string
	DB         libmanager.DBConfig
	LogLevel   string
	RateLimit  float64
	RateBurst  int
	Swagger    bool
}

func Default() Config {
	return Config{
		Port:       "3000",
		SeedsDir:   "./seeds",
		SeedSource: SeedFiles,
		LogLevel:   "info",
		RateBurst:  1,
	}
}

// Load reads envFile when it exists; a missing file is not an error.
func Load(envFile string) (Config, error) {
	vars := make(map[string]string)
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading %s: %w", envFile, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
	return FromLookup(lookup)
}

// FromLookup builds a Config from a key lookup, applying defaults for keys
// that are absent or empty.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("SERVER_HOST", &cfg.Host)
	str("PORT", &cfg.Port)
	str("SEEDS_DIR", &cfg.SeedsDir)
	str("SEED_SOURCE", &cfg.SeedSource)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("DB_HOST", &cfg.DB.Host)
	str("DB_PORT", &cfg.DB.Port)
	str("DB_USER", &cfg.DB.Username)
	str("DB_PASSWORD", &cfg.DB.Password)
	str("DB_SONGSLIB_NAME", &cfg.DB.DBName)
	cfg.SeedSource = strings.ToLower(cfg.SeedSource)

	if v, ok := lookup("RATE_LIMIT"); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps < 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT: invalid value %q", v)
		}
		cfg.RateLimit = rps
	}
	if v, ok := lookup("RATE_BURST"); ok && v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst < 1 {
			return Config{}, fmt.Errorf("RATE_BURST: invalid value %q", v)
		}
		cfg.RateBurst = burst
	}
	if v, ok := lookup("SWAGGER"); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("SWAGGER: invalid value %q", v)
		}
		cfg.Swagger = on
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
		return fmt.Errorf("PORT: invalid value %q", c.Port)
	}
	switch c.SeedSource {
	case SeedFiles:
	case SeedPostgres:
		if c.DB.Host == "" || c.DB.DBName == "" {
			return errors.New("postgres seed source needs DB_HOST and DB_SONGSLIB_NAME")
		}
	default:
		return fmt.Errorf("SEED_SOURCE: unknown source %q", c.SeedSource)
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}
