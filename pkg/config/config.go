package config

import (
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/iancoleman/strcase"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	ImageStorageFilesystem = "filesystem"
	ImageStorageS3         = "s3"
)

type Config struct {
	DatabaseBusyTimeout       time.Duration `koanf:"database_busy_timeout" default:"5s"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count" default:"5"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay" default:"2s"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseFilePath          string        `koanf:"database_file_path" required:"true"`
	DatabaseMaxRetries        int           `koanf:"database_max_retries" default:"5"`

	ServerHost       string   `koanf:"server_host" default:"0.0.0.0"`
	ServerPort       int      `koanf:"server_port" default:"5000"`
	CORSAllowOrigins []string `koanf:"cors_allow_origins" default:"[\"*\"]"`
	BodyLimit        string   `koanf:"body_limit" default:"10M"`

	ImageStorage      string `koanf:"image_storage" default:"filesystem"`
	ImagesDir         string `koanf:"images_dir" default:"./wwwroot/images"`
	S3Bucket          string `koanf:"s3_bucket"`
	S3Region          string `koanf:"s3_region" default:"auto"`
	S3Endpoint        string `koanf:"s3_endpoint"`
	S3Prefix          string `koanf:"s3_prefix" default:"images/"`
	S3UsePathStyle    bool   `koanf:"s3_use_path_style"`
	S3AccessKeyID     string `koanf:"s3_access_key_id"`
	S3SecretAccessKey string `koanf:"s3_secret_access_key"`
}

const configFileENV = "CONFIG_FILE"

// New loads the configuration. Values are layered: struct defaults first, then
// the YAML config file (if it exists), then environment variables.
func New() (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	k := koanf.New(".")

	path := os.Getenv(configFileENV)
	if path == "" {
		path = "/config/config.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", path)
		}
	}

	keys := knownKeys()
	err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if _, ok := keys[key]; !ok {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewForTest returns a config backed by an in-memory database.
func NewForTest() *Config {
	cfg := &Config{}
	_ = defaults.Set(cfg)
	cfg.DatabaseFilePath = ":memory:"
	cfg.DatabaseConnectRetryDelay = 10 * time.Millisecond
	cfg.ServerHost = "127.0.0.1"
	cfg.ServerPort = 0
	return cfg
}

func validate(cfg *Config) error {
	missing := []string{}
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Tag.Get("required") != "true" {
			continue
		}
		if v.Field(i).IsZero() {
			key := toSnakeCase(field.Name)
			missing = append(missing, strings.ToUpper(key)+" ("+key+")")
		}
	}
	if len(missing) > 0 {
		return errors.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}

	switch cfg.ImageStorage {
	case ImageStorageFilesystem:
	case ImageStorageS3:
		if cfg.S3Bucket == "" {
			return errors.New("s3_bucket is required when image_storage is s3")
		}
	default:
		return errors.Errorf("unknown image_storage %q", cfg.ImageStorage)
	}

	return nil
}

// knownKeys lists the koanf keys of Config so that unrelated environment
// variables are ignored.
func knownKeys() map[string]struct{} {
	keys := map[string]struct{}{}
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		if key := t.Field(i).Tag.Get("koanf"); key != "" {
			keys[key] = struct{}{}
		}
	}
	return keys
}

func toSnakeCase(s string) string {
	return strcase.ToSnake(s)
}
