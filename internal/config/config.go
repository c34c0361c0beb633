package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server  ServerConfig
	Uploads UploadsConfig
	Watch   WatchConfig
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:""`
	Port int    `envconfig:"PORT" default:"3400"`
}

type UploadsConfig struct {
	// Dir defaults to <cwd>/uploads when neither the flag nor the
	// environment provides a value. Created recursively at startup.
	Dir string `envconfig:"UPLOADS_DIR" default:""`
	// MaxMultipartBytes caps how much of a multipart body is buffered in
	// memory before spilling to temp files.
	MaxMultipartBytes int64 `envconfig:"UPLOAD_MAX_SIZE" default:"67108864"` // 64MB
}

type WatchConfig struct {
	// Debounce is the quiet period after the last raw filesystem event
	// before a single refresh broadcast fires.
	Debounce time.Duration `envconfig:"WATCH_DEBOUNCE" default:"300ms"`
}

// Load reads the environment first, then applies CLI flags on top, so
// precedence is CLI > env > default.
func Load(args []string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("cho-upload", flag.ContinueOnError)
	var (
		port       int
		uploadsDir string
	)
	fs.IntVar(&port, "port", 0, "port to listen on")
	fs.IntVar(&port, "p", 0, "port to listen on (shorthand)")
	fs.StringVar(&uploadsDir, "uploads-dir", "", "directory to store uploads in")
	fs.StringVar(&uploadsDir, "u", "", "directory to store uploads in (shorthand)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port", "p":
			cfg.Server.Port = port
		case "uploads-dir", "u":
			cfg.Uploads.Dir = uploadsDir
		}
	})

	if cfg.Uploads.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		cfg.Uploads.Dir = filepath.Join(cwd, "uploads")
	}

	return &cfg, nil
}
