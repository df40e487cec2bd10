// Package seeder loads catalog partition dumps into the document store.
package seeder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. ELECTRO_SEED_DATABASE_DSN
// or ELECTRO_SEED_S3_BUCKET.
const EnvPrefix = "ELECTRO_SEED"

const (
	SourceFile = "file"
	SourceS3   = "s3"
)

type S3Config struct {
	Region       string `mapstructure:"region"`
	Bucket       string `mapstructure:"bucket"`
	Prefix       string `mapstructure:"prefix"`
	Endpoint     string `mapstructure:"endpoint"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	UsePathStyle bool   `mapstructure:"use_path_style"`
}

type Config struct {
	DatabaseDSN string   `mapstructure:"database_dsn"`
	Source      string   `mapstructure:"source"`
	Dir         string   `mapstructure:"dir"`
	Partitions  []string `mapstructure:"partitions"`
	LogLevel    string   `mapstructure:"log_level"`
	S3          S3Config `mapstructure:"s3"`
}

var defaultPartitions = []string{
	"AllProducts", "shuffle", "topRatings", "featured",
	"onSell", "bestSells", "bestDeals", "recentlyAdded",
}

// Load reads flags from args, an optional config file (--config, YAML or
// JSON) and ELECTRO_SEED_* variables. Flags win over the environment, which
// wins over the file.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("seeder", pflag.ContinueOnError)
	configFile := fs.StringP("config", "c", "", "config file")
	fs.StringP("dsn", "d", "", "PostgreSQL DSN")
	fs.StringP("source", "s", SourceFile, "dump source: file or s3")
	fs.String("dir", "./seed", "directory with <partition>.json dumps")
	fs.StringSlice("partitions", defaultPartitions, "partitions to load")
	fs.String("log-level", "info", "log level")
	fs.String("bucket", "", "S3 bucket with dumps")
	fs.String("prefix", "", "S3 key prefix")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("s3.region", "us-east-1")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	binds := map[string]string{
		"database_dsn": "dsn",
		"source":       "source",
		"dir":          "dir",
		"partitions":   "partitions",
		"log_level":    "log-level",
		"s3.bucket":    "bucket",
		"s3.prefix":    "prefix",
	}
	for key, flag := range binds {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, err
		}
	}
	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range []string{"s3.endpoint", "s3.access_key", "s3.secret_key", "s3.use_path_style"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var errs []error
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database_dsn: required"))
	}
	if len(c.Partitions) == 0 {
		errs = append(errs, errors.New("partitions: at least one required"))
	}
	switch c.Source {
	case SourceFile:
		if c.Dir == "" {
			errs = append(errs, errors.New("dir: required for file source"))
		}
	case SourceS3:
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("s3.bucket: required for s3 source"))
		}
	default:
		errs = append(errs, fmt.Errorf("source: unknown %q", c.Source))
	}
	return errors.Join(errs...)
}
