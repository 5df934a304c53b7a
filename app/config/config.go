package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// SecretKeyLen is the decoded length of MINISITE_SECRET_KEY. The first half
// signs session cookies, the second half signs CSRF tokens.
const SecretKeyLen = 64

// Config holds the runtime settings for the site. Every field maps to a
// MINISITE_* environment variable; a .env file is honored when present.
type Config struct {
	Env          string
	Addr         string
	DBPath       string
	MediaDir     string
	SecretKey    []byte
	CookieSecure bool
}

// Load reads configuration from the environment, loading a .env file first if
// one exists. Unset values fall back to development defaults. When
// MINISITE_SECRET_KEY is missing a random ephemeral key is generated so a dev
// server runs out of the box; sessions then expire on restart.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:          getEnv("MINISITE_ENV", "dev"),
		Addr:         getEnv("MINISITE_ADDR", ":8080"),
		DBPath:       getEnv("MINISITE_DB_PATH", "data/badger"),
		MediaDir:     getEnv("MINISITE_MEDIA_DIR", "data/media"),
		CookieSecure: getBool("MINISITE_COOKIE_SECURE", false),
	}

	if raw := os.Getenv("MINISITE_SECRET_KEY"); raw != "" {
		key, err := hex.DecodeString(raw)
		if err != nil || len(key) != SecretKeyLen {
			log.Fatal().Msgf("MINISITE_SECRET_KEY must be %d hex-encoded bytes", SecretKeyLen)
		}
		cfg.SecretKey = key
	} else {
		cfg.SecretKey = RandomSecretKey()
		log.Warn().Msg("MINISITE_SECRET_KEY is not set; using an ephemeral key (run `minisite genkey --save`)")
	}

	return cfg
}

// SessionKey returns the half of the secret key that signs session cookies.
func (c Config) SessionKey() []byte {
	return c.SecretKey[:SecretKeyLen/2]
}

// CSRFKey returns the half of the secret key that signs CSRF tokens.
func (c Config) CSRFKey() []byte {
	return c.SecretKey[SecretKeyLen/2:]
}

// RandomSecretKey generates a fresh site secret key.
func RandomSecretKey() []byte {
	key := make([]byte, SecretKeyLen)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}
	return key
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
