package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// process-wide switches read by the transport layer
var JWT_SECRET []byte
var PREFORK bool
var DRAIN_MODE bool

// this is required
var VERSION string

// Config holds the runtime configuration of the service.
type Config struct {
	Deployment string `envconfig:"DEPLOYMENT" default:"dev"`
	Addr       string `envconfig:"ADDR" default:":8080"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	MongoURI      string `envconfig:"MONGO_URI" default:"mongodb://127.0.0.1:27017"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"agora"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	PubSubDriver string `envconfig:"PUBSUB_DRIVER" default:"local"`
	PubSubPrefix string `envconfig:"PUBSUB_PREFIX" default:"agora:hub:"`

	SSEKeepAlive     time.Duration `envconfig:"SSE_KEEPALIVE" default:"30s"`
	SSEBuffer        int           `envconfig:"SSE_BUFFER" default:"64"`
	SSEAttachTimeout time.Duration `envconfig:"SSE_ATTACH_TIMEOUT" default:"1m"`

	EventBatchSize  int           `envconfig:"EVENT_BATCH_SIZE" default:"50"`
	EventFlushEvery time.Duration `envconfig:"EVENT_FLUSH_EVERY" default:"2s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	Prefork   bool `envconfig:"PREFORK"`
	DrainMode bool `envconfig:"DRAIN_MODE"`

	Version string `ignored:"true"`
}

// Load reads <envRoot>/.env (when present) over the process environment and
// decodes the result into a Config. It also sets the package globals.
func Load(envRoot string, appVersion string) (Config, error) {
	var cfg Config

	if err := loadEnv(envRoot); err != nil {
		return cfg, err
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return cfg, errors.New("JWT_SECRET must be provided")
	}

	switch cfg.PubSubDriver {
	case "local", "redis":
	default:
		return cfg, fmt.Errorf("unknown PUBSUB_DRIVER %q", cfg.PubSubDriver)
	}

	if cfg.SSEKeepAlive <= 0 {
		return cfg, errors.New("SSE_KEEPALIVE must be positive")
	}

	version, err := loadVersion(appVersion)
	if err != nil {
		return cfg, err
	}
	cfg.Version = version

	JWT_SECRET = []byte(cfg.JWTSecret)
	PREFORK = cfg.Prefork
	DRAIN_MODE = cfg.DrainMode
	VERSION = version

	return cfg, nil
}

func loadEnv(envRoot string) error {
	if envRoot == "" {
		envRoot = repoRoot()
	}

	path := path.Join(envRoot, ".env")
	if err := godotenv.Overload(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return nil
}

func loadVersion(appVersion string) (string, error) {
	if appVersion != "" {
		return appVersion, nil
	}

	data, err := os.ReadFile(filepath.Join(repoRoot(), "VERSION"))
	if err != nil {
		return "", fmt.Errorf("failed to read version file from repo root: %w", err)
	}

	if trimmed := strings.TrimSpace(string(data)); trimmed != "" {
		return trimmed, nil
	}
	return "unknown", nil
}

func repoRoot() string {
	_, b, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(b), "../..")
}
