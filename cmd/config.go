package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	CheckpointBackendPostgres = "postgres"
	CheckpointBackendFile     = "file"
)

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	CheckpointBackend       string
	CheckpointFile          string
	KafkaHost               string
	KafkaNotificationsTopic string
	ReconcileSchedule       string
}

var defaults = map[string]string{
	"HTTP_PORT":                 "8080",
	"DB_PORT":                   "5432",
	"DB_SSLMODE":                "disable",
	"CHECKPOINT_BACKEND":        CheckpointBackendFile,
	"CHECKPOINT_FILE":           "data/checkpoint.json",
	"KAFKA_NOTIFICATIONS_TOPIC": "proofparcel.notifications",
	"RECONCILE_SCHEDULE":        "0 * * * * *",
}

// LoadConfig reads configuration in order: .env (if present), environment,
// then command-line flags. A missing .env file is not an error.
func LoadConfig(args []string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	env := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return defaults[key]
	}

	config := Config{
		HTTPPort:                env("HTTP_PORT"),
		DBHost:                  env("DB_HOST"),
		DBPort:                  env("DB_PORT"),
		DBUser:                  env("DB_USER"),
		DBPassword:              env("DB_PASSWORD"),
		DBName:                  env("DB_NAME"),
		DBSslMode:               env("DB_SSLMODE"),
		CheckpointBackend:       env("CHECKPOINT_BACKEND"),
		CheckpointFile:          env("CHECKPOINT_FILE"),
		KafkaHost:               env("KAFKA_HOST"),
		KafkaNotificationsTopic: env("KAFKA_NOTIFICATIONS_TOPIC"),
		ReconcileSchedule:       env("RECONCILE_SCHEDULE"),
	}

	flags := pflag.NewFlagSet("proofparcel", pflag.ContinueOnError)
	flags.StringVarP(&config.HTTPPort, "port", "p", config.HTTPPort, "HTTP port to listen on")
	flags.StringVar(&config.CheckpointBackend, "checkpoint-backend", config.CheckpointBackend,
		"where checkpoints are kept: postgres or file")
	flags.StringVar(&config.CheckpointFile, "checkpoint-file", config.CheckpointFile,
		"checkpoint path for the file backend")
	flags.StringVar(&config.KafkaHost, "kafka-host", config.KafkaHost,
		"comma-separated Kafka brokers; empty disables publishing")
	flags.StringVar(&config.ReconcileSchedule, "reconcile-schedule", config.ReconcileSchedule,
		"cron schedule, with seconds, of the escrow reconciliation")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	port, err := strconv.Atoi(c.HTTPPort)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid HTTP port: %q", c.HTTPPort)
	}

	switch c.CheckpointBackend {
	case CheckpointBackendFile:
		if c.CheckpointFile == "" {
			return errors.New("CHECKPOINT_FILE is required for the file checkpoint backend")
		}
	case CheckpointBackendPostgres:
		if c.DBHost == "" || c.DBName == "" {
			return errors.New("DB_HOST and DB_NAME are required for the postgres checkpoint backend")
		}
	default:
		return fmt.Errorf("unknown checkpoint backend %q", c.CheckpointBackend)
	}
	return nil
}
