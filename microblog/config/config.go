package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Provider is one entry in the federated-identity catalog. The handshake
// itself happens upstream; the catalog only gates which provider names the
// login endpoint accepts.
type Provider struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Config struct {
	HTTPAddr        string
	DBUser          string
	DBPassword      string
	DBHost          string
	DBPort          string
	DBName          string
	JWTSecret       string
	SearchIndexPath string
	ProvidersFile   string
	Providers       []Provider
}

var defaultProviders = []Provider{
	{Name: "Google", URL: "https://www.google.com/accounts/o8/id"},
	{Name: "Yahoo", URL: "https://me.yahoo.com"},
	{Name: "AOL", URL: "http://openid.aol.com/<username>"},
	{Name: "Flickr", URL: "http://www.flickr.com/<username>"},
	{Name: "MyOpenID", URL: "https://www.myopenid.com"},
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8000"),
		DBUser:          getEnv("DB_USER", ""),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBHost:          getEnv("DB_HOST", ""),
		DBPort:          getEnv("DB_PORT", ""),
		DBName:          getEnv("DB_NAME", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		SearchIndexPath: getEnv("SEARCH_INDEX_PATH", "./microblog.bleve"),
		ProvidersFile:   getEnv("PROVIDERS_FILE", "./providers.yaml"),
	}
	cfg.Providers = loadProviders(cfg.ProvidersFile)
	return cfg
}

func (c Config) KnownProvider(name string) bool {
	for _, p := range c.Providers {
		if p.Name == name {
			return true
		}
	}
	return false
}

// loadProviders reads the YAML catalog, falling back to the built-in list
// when the file is missing or unreadable.
func loadProviders(path string) []Provider {
	b, err := os.ReadFile(path)
	if err != nil {
		return defaultProviders
	}
	var providers []Provider
	if err := yaml.Unmarshal(b, &providers); err != nil {
		log.Printf("invalid providers file %s: %v, using defaults", path, err)
		return defaultProviders
	}
	if len(providers) == 0 {
		return defaultProviders
	}
	return providers
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
