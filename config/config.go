package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/sajilorent/rental-service/internal/cache"
	"github.com/sajilorent/rental-service/internal/server"
	"github.com/sajilorent/rental-service/internal/storage"
	"github.com/sajilorent/rental-service/pkg/auth"
	"github.com/sajilorent/rental-service/pkg/kafka"
	"github.com/sajilorent/rental-service/pkg/logger"
	"github.com/sajilorent/rental-service/pkg/postgres"
)

type Config struct {
	Server   server.Config   `yaml:"server"`
	Database postgres.Config `yaml:"database"`
	Redis    cache.Config    `yaml:"redis"`
	Kafka    kafka.Config    `yaml:"kafka"`
	S3       storage.Config  `yaml:"s3"`
	Auth     auth.Config     `yaml:"auth"`
	Log      logger.Log      `yaml:"log"`

	// ViewFlushInterval controls how often buffered view counts are
	// folded into the listings table.
	ViewFlushInterval time.Duration `yaml:"viewFlushInterval" envconfig:"VIEW_FLUSH_INTERVAL" default:"30s"`
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	cfg.Auth.Secret = "***"
	cfg.S3.SecretKey = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
