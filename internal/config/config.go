package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type ContractConfig struct {
	Env             string `yaml:"env"`
	HTTPServer      `yaml:"http_server"`
	ContractDB      `yaml:"contract_db"`
	LogConfig       `yaml:"log_config"`
	PaymentsService `yaml:"payments-service"`
	KafkaService    `yaml:"kafka-service"`
	RedisService    `yaml:"redis-service"`
	Reconciliation  `yaml:"reconciliation"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type ContractDB struct {
	Dsn           string `yaml:"dsn"`
	MigrationPath string `yaml:"migration_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type PaymentsService struct {
	Address        string `yaml:"address"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env-default:"15"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RedisService struct {
	Addr string `yaml:"addr"`
}

type Reconciliation struct {
	IntervalSeconds     int `yaml:"interval_seconds" env-default:"60"`
	StaleWebhookMinutes int `yaml:"stale_webhook_minutes" env-default:"30"`
}

func MustLoad() *ContractConfig {
	// Processing env config variable and file
	configPath := os.Getenv("CONTRACT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("CONTRACT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ContractConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
