package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"mt5_bridge/internal/models"
)

const (
	configFilePathENV  = "CONFIG_FILE"
	gatewayURLENV      = "MT5_GATEWAY_URL"
	terminalEnabledENV = "TERMINAL_ENABLED"
	tokenTelegramENV   = "TELEGRAM_TOKEN"
	chatTelegramENV    = "TELEGRAM_CHAT_ID"
)

// Config ...
type Config struct {
	Service struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"service"`

	Terminal struct {
		// Enabled=false — платформа без MT5, мост работает на Noop-адаптере.
		Enabled    bool   `yaml:"enabled"`
		GatewayURL string `yaml:"gateway_url"`
	} `yaml:"terminal"`

	Trade struct {
		Magic          int64  `yaml:"magic"`
		DefaultComment string `yaml:"default_comment"`
	} `yaml:"trade"`

	Jaeger struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"jaeger"`

	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	config := Config{}
	config.Service.Port = 8000
	config.Terminal.Enabled = true
	config.Terminal.GatewayURL = "ws://127.0.0.1:8765/mt5"
	config.Trade.Magic = models.BridgeMagic
	config.Trade.DefaultComment = "GainZAlgo Signal"

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	file, err := os.Open("configs/" + configFileName)
	if err != nil {
		// без файла живём на дефолтах + env
		log.Printf("config: no file configs/%s, using env defaults", configFileName)
	} else {
		defer func() {
			_ = file.Close()
		}()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			log.Fatalf("Failed to decode config file: %v", err)
		}
	}

	if url := os.Getenv(gatewayURLENV); url != "" {
		config.Terminal.GatewayURL = url
	}
	config.Terminal.Enabled = boolFromEnv(terminalEnabledENV, config.Terminal.Enabled)

	if token := os.Getenv(tokenTelegramENV); token != "" {
		config.Telegram.Token = token
	}
	if chat := int64FromEnv(chatTelegramENV, 0); chat != 0 {
		config.Telegram.ChatID = chat
	}
	if port := intFromEnv("PORT", 0); port != 0 {
		config.Service.Port = port
	}

	return &config, nil
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func int64FromEnv(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func boolFromEnv(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if v == "1" || v == "true" || v == "TRUE" {
			return true
		}
		if v == "0" || v == "false" || v == "FALSE" {
			return false
		}
	}
	return def
}
