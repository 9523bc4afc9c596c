package config

import (
	"fmt"
	"time"

	"ProjectBlog/database/postgres"
	"ProjectBlog/pkg/s3"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	sslModeDisable    = "disable"
	sslModeRequire    = "require"
	sslModeVerifyFull = "verify-full"

	ImageStorageDisk = "disk"
	ImageStorageS3   = "s3"
)

type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	AppEnv  string `mapstructure:"APP_ENV"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSL_MODE"`

	RedisAddress  string `mapstructure:"REDIS_ADDRESS"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	SessionExpiration time.Duration `mapstructure:"SESSION_EXPIRATION"`

	StaticDir    string `mapstructure:"STATIC_DIR"`
	ImageStorage string `mapstructure:"IMAGE_STORAGE"`
	ImageUploads string `mapstructure:"IMAGE_UPLOADS"`
	ImageBaseURL string `mapstructure:"IMAGE_BASE_URL"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSBucketName      string `mapstructure:"AWS_BUCKET_NAME"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	AWSEndpoint        string `mapstructure:"AWS_ENDPOINT"`
}

var defaults = map[string]interface{}{
	"APP_PORT": "3000",
	"APP_ENV":  "development",

	"DB_HOST":     "localhost",
	"DB_PORT":     "5432",
	"DB_USER":     "postgres",
	"DB_PASSWORD": "",
	"DB_NAME":     "blog",
	"DB_SSL_MODE": sslModeDisable,

	"REDIS_ADDRESS":  "",
	"REDIS_PASSWORD": "",
	"REDIS_DB":       0,

	"SESSION_EXPIRATION": "744h",

	"STATIC_DIR":     "./static",
	"IMAGE_STORAGE":  ImageStorageDisk,
	"IMAGE_UPLOADS":  "./static/image/uploaded",
	"IMAGE_BASE_URL": "/static/image/uploaded/",

	"AWS_REGION":            "",
	"AWS_BUCKET_NAME":       "",
	"AWS_ACCESS_KEY_ID":     "",
	"AWS_SECRET_ACCESS_KEY": "",
	"AWS_ENDPOINT":          "",
}

// Load reads the configuration from the environment, falling back to the
// defaults above for every unset key.
func Load() (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config unmarshal failed")
	}

	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.DBSSLMode {
	case sslModeDisable, sslModeRequire, sslModeVerifyFull:
	default:
		return errors.New(fmt.Sprintf("DB SSL mode is invalid: %s", cfg.DBSSLMode))
	}

	switch cfg.ImageStorage {
	case ImageStorageDisk:
	case ImageStorageS3:
		if cfg.AWSBucketName == "" || cfg.AWSRegion == "" {
			return errors.New("AWS_BUCKET_NAME and AWS_REGION are required for s3 image storage")
		}
	default:
		return errors.New(fmt.Sprintf("image storage is invalid: %s", cfg.ImageStorage))
	}

	if cfg.SessionExpiration <= 0 {
		return errors.New("SESSION_EXPIRATION must be positive")
	}

	return nil
}

func (c *Config) Postgres() postgres.Options {
	return postgres.Options{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSSLMode,
	}
}

func (c *Config) S3() s3.Options {
	return s3.Options{
		Region:          c.AWSRegion,
		BucketName:      c.AWSBucketName,
		AccessKeyID:     c.AWSAccessKeyID,
		SecretAccessKey: c.AWSSecretAccessKey,
		Endpoint:        c.AWSEndpoint,
	}
}
