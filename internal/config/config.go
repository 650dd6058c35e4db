package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DatastorePostgres = "postgres"
	DatastoreMemory   = "memory"
)

type MinIO struct {
	Endpoint         string
	AccessKey        string
	SecretKey        string
	UseSSL           bool
	BucketThumbnails string
	BucketImports    string
	PublicURL        string
}

// Enabled reports whether enough settings are present to build a client.
func (m MinIO) Enabled() bool {
	return m.Endpoint != "" && m.AccessKey != "" && m.SecretKey != ""
}

type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	UseTLS   bool
}

func (s SMTP) Enabled() bool {
	return s.Host != "" && s.Port != "" && s.From != ""
}

type Config struct {
	Port            string
	Datastore       string
	DatabaseURL     string
	AllowOrigins    []string
	LogLevel        string
	LogJSON         bool
	LogstashTCPAddr string
	JWTSecret       string
	SpotterHeader   string

	DefaultTravelBandThumbnail string
	DefaultFolderThumbnail     string
	ThumbnailMaxBytes          int64
	ThumbnailMaxDimension      int
	FolderCountConcurrency     int
	ImportMaxRows              int

	MinIO MinIO
	SMTP  SMTP
}

// Load reads the environment, after merging an optional .env file. A
// missing .env is not an error; a malformed one is.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	var problems []string
	intVar := func(key string, def int) int {
		raw := getenv(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			problems = append(problems, key+" must be a positive integer")
			return def
		}
		return v
	}

	cfg := Config{
		Port:            getenv("PORT", "8080"),
		Datastore:       strings.ToLower(getenv("DATASTORE", DatastorePostgres)),
		DatabaseURL:     getenv("DATABASE_URL", ""),
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogJSON:         getenv("LOG_JSON", "true") == "true",
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),
		JWTSecret:       getenv("JWT_SECRET", ""),
		SpotterHeader:   getenv("SPOTTER_HEADER", "X-Spotter"),

		DefaultTravelBandThumbnail: getenv("DEFAULT_TRAVEL_BAND_THUMBNAIL", ""),
		DefaultFolderThumbnail:     getenv("DEFAULT_FOLDER_THUMBNAIL", ""),
		ThumbnailMaxBytes:          int64(intVar("THUMBNAIL_MAX_BYTES", 5*1024*1024)),
		ThumbnailMaxDimension:      intVar("THUMBNAIL_MAX_DIMENSION", 2048),
		FolderCountConcurrency:     intVar("FOLDER_COUNT_CONCURRENCY", 8),
		ImportMaxRows:              intVar("IMPORT_MAX_ROWS", 5000),

		MinIO: MinIO{
			Endpoint:         getenv("MINIO_ENDPOINT", ""),
			AccessKey:        getenv("MINIO_ACCESS_KEY", ""),
			SecretKey:        getenv("MINIO_SECRET_KEY", ""),
			UseSSL:           getenv("MINIO_USE_SSL", "false") == "true",
			BucketThumbnails: getenv("MINIO_BUCKET_THUMBNAILS", "travelband-thumbnails"),
			BucketImports:    getenv("MINIO_BUCKET_IMPORTS", "travelband-imports"),
			PublicURL:        getenv("MINIO_PUBLIC_URL", ""),
		},
		SMTP: SMTP{
			Host:     getenv("SMTP_HOST", ""),
			Port:     getenv("SMTP_PORT", ""),
			Username: getenv("SMTP_USERNAME", ""),
			Password: getenv("SMTP_PASSWORD", ""),
			From:     getenv("SMTP_FROM", ""),
			UseTLS:   getenv("SMTP_USE_TLS", "false") == "true",
		},
	}

	switch cfg.Datastore {
	case DatastorePostgres:
		if cfg.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL is required when DATASTORE=postgres")
		}
	case DatastoreMemory:
	default:
		problems = append(problems, fmt.Sprintf("DATASTORE must be %q or %q", DatastorePostgres, DatastoreMemory))
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}
