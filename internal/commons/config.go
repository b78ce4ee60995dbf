package commons

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type RegistryMode string

const (
	RegistryModeStatic RegistryMode = "static"
	RegistryModeRedis  RegistryMode = "redis"
)

type Config struct {
	ServerPort          uint16
	ExchangeBaseURL     string
	ExchangeServiceName string
	ExchangeInstances   []string
	RegistryMode        RegistryMode
	RedisAddr           string
	RedisPass           string
	UpstreamTimeout     time.Duration
	PostgresConn        string
}

const (
	decimalBase = 10
	bitSize     = 16
)

func LoadConfig() (Config, error) {
	var config Config
	var errors []string

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		errors = append(errors, "SERVER_PORT is not set")
	} else {
		parsedServerPort, err := strconv.ParseUint(serverPort, decimalBase, bitSize)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid SERVER_PORT: %s", err))
		} else {
			config.ServerPort = uint16(parsedServerPort)
		}
	}

	config.ExchangeBaseURL = strings.TrimSuffix(os.Getenv("EXCHANGE_BASE_URL"), "/")
	if config.ExchangeBaseURL == "" {
		errors = append(errors, "EXCHANGE_BASE_URL is not set")
	} else if err := validateBaseURL(config.ExchangeBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid EXCHANGE_BASE_URL: %s", err))
	}

	config.ExchangeServiceName = os.Getenv("EXCHANGE_SERVICE_NAME")
	if config.ExchangeServiceName == "" {
		config.ExchangeServiceName = DefaultExchangeServiceName
	}

	config.RegistryMode = RegistryMode(strings.ToLower(os.Getenv("REGISTRY_MODE")))
	if config.RegistryMode == "" {
		config.RegistryMode = RegistryModeStatic
	}

	config.ExchangeInstances = splitList(os.Getenv("EXCHANGE_INSTANCES"))
	for _, instance := range config.ExchangeInstances {
		if err := validateBaseURL(instance); err != nil {
			errors = append(errors, fmt.Sprintf("invalid EXCHANGE_INSTANCES entry %q: %s", instance, err))
		}
	}

	config.RedisAddr = os.Getenv("REDIS_ADDR")
	config.RedisPass = os.Getenv("REDIS_PASSWORD")

	switch config.RegistryMode {
	case RegistryModeStatic:
		if len(config.ExchangeInstances) == 0 {
			errors = append(errors, "EXCHANGE_INSTANCES is not set")
		}
	case RegistryModeRedis:
		if config.RedisAddr == "" {
			errors = append(errors, "REDIS_ADDR is not set")
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid REGISTRY_MODE: %s", config.RegistryMode))
	}

	config.UpstreamTimeout = DefaultUpstreamTimeout
	if raw := os.Getenv("UPSTREAM_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			errors = append(errors, fmt.Sprintf("invalid UPSTREAM_TIMEOUT: %s", raw))
		} else {
			config.UpstreamTimeout = timeout
		}
	}

	config.PostgresConn = os.Getenv("POSTGRES_CONN")

	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Println("Configuration Error:", err)
		}
		return Config{}, fmt.Errorf("configuration errors occurred")
	}

	return config, nil
}

func validateBaseURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if parsed.Host == "" {
		return fmt.Errorf("host is missing")
	}
	return nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSuffix(strings.TrimSpace(item), "/")
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// RegistryConfig is what cmd/seed needs to publish exchange instances.
type RegistryConfig struct {
	ServiceName string
	Instances   []string
	RedisAddr   string
	RedisPass   string
}

func LoadRegistryConfig() (RegistryConfig, error) {
	config := RegistryConfig{
		ServiceName: os.Getenv("EXCHANGE_SERVICE_NAME"),
		Instances:   splitList(os.Getenv("EXCHANGE_INSTANCES")),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
	}
	if config.ServiceName == "" {
		config.ServiceName = DefaultExchangeServiceName
	}

	var errors []string
	if config.RedisAddr == "" {
		errors = append(errors, "REDIS_ADDR is not set")
	}
	if len(config.Instances) == 0 {
		errors = append(errors, "EXCHANGE_INSTANCES is not set")
	}
	for _, instance := range config.Instances {
		if err := validateBaseURL(instance); err != nil {
			errors = append(errors, fmt.Sprintf("invalid EXCHANGE_INSTANCES entry %q: %s", instance, err))
		}
	}

	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Println("Configuration Error:", err)
		}
		return RegistryConfig{}, fmt.Errorf("configuration errors occurred")
	}
	return config, nil
}
