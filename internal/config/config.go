package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress         string `env:"RUN_ADDRESS"`
	DatabaseDSN        string `env:"DATABASE_URI"`
	MigrationsDir      string `env:"MIGRATIONS_DIR"`
	JWTUserSecret      string `env:"JWT_SECRET"`
	RedisAddr          string `env:"REDIS_ADDR"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	ImageKitPrivateKey string `env:"IMAGEKIT_PRIVATE_KEY"`
	ImageKitEndpoint   string `env:"IMAGEKIT_URL_ENDPOINT"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT signing secret")
	flag.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address in format host:port (optional)")
	flag.StringVar(&flagConfig.ImageKitPrivateKey, "ik", "", "ImageKit private API key (blank enables stub mode)")
	flag.StringVar(&flagConfig.ImageKitEndpoint, "ie", "https://ik.imagekit.io/safevault", "ImageKit URL endpoint")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:         defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:        defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:      defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:      defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		RedisAddr:          defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr),
		RedisPassword:      envConfig.RedisPassword,
		ImageKitPrivateKey: defaultIfBlank(envConfig.ImageKitPrivateKey, flagsConfig.ImageKitPrivateKey),
		ImageKitEndpoint:   defaultIfBlank(envConfig.ImageKitEndpoint, flagsConfig.ImageKitEndpoint),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
