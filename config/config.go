package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseURL   string `envconfig:"DATABASE_URL"`                      // postgres:// or a MySQL DSN
	SQLiteFile    string `envconfig:"SQLITE_FILE" default:"database.db"` // used if DATABASE_URL is not set
	SessionSecret string `envconfig:"SECRET_KEY" default:"dev_key"`
	BindAddress   string `envconfig:"BIND_ADDRESS" default:"0.0.0.0:5000"`
	TLSDomains    string `envconfig:"TLS_DOMAINS"` // e.g. "example.com,example2.com"
	DebugMode     bool   `envconfig:"DEBUG_MODE" default:"true"`
	PortalURL     string `envconfig:"PORTAL_URL" default:"http://127.0.0.1:5000"`
	// Origins allowed to call the portal cross-site (e.g. a separate gallery front-end)
	CORSOrigins []string `envconfig:"CORS_ORIGINS"`

	// StaticDir holds the per-client preselection folders (<static>/<clients>/<name>/<preselection>)
	StaticDir           string `envconfig:"STATIC_DIR" default:"static"`
	PreselectionClients string `envconfig:"PRESELECTION_CLIENTS_DIR" default:"clients"`
	PreselectionDir     string `envconfig:"PRESELECTION_DIR" default:"preselection"`
	// UploadDir is the single shared directory for contracts, photo archives and videos.
	// Keep it outside StaticDir, uploads are only served behind the login gates.
	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads"`

	// Uploads go to S3 instead of UploadDir when S3Bucket is set
	S3Bucket   string `envconfig:"S3_BUCKET"`
	S3Region   string `envconfig:"S3_REGION" default:"us-east-1"`
	S3Endpoint string `envconfig:"S3_ENDPOINT"`
	S3Key      string `envconfig:"S3_KEY"`
	S3Secret   string `envconfig:"S3_SECRET"`
	S3Prefix   string `envconfig:"S3_PREFIX" default:"uploads"`

	MailServer   string `envconfig:"MAIL_SERVER" default:"smtp-relay.brevo.com"`
	MailPort     int    `envconfig:"MAIL_PORT" default:"587"`
	MailUsername string `envconfig:"MAIL_USERNAME"`
	MailPassword string `envconfig:"MAIL_PASSWORD"`
	MailSender   string `envconfig:"MAIL_SENDER" default:"Estudio Bello"`
}

// Load reads an optional .env file and then the process environment
func Load() (Config, error) {
	return LoadFrom(".env", filepath.Join("..", ".env"))
}

// LoadFrom loads the first dotenv file of paths that exists. Variables already
// set in the environment win.
func LoadFrom(paths ...string) (Config, error) {
	var c Config
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err = godotenv.Load(p); err != nil {
				return c, fmt.Errorf("load %s: %w", p, err)
			}
			break
		}
	}
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) TLSDomainList() []string {
	if c.TLSDomains == "" {
		return nil
	}
	return strings.Split(c.TLSDomains, ",")
}
