package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paavkar/AgricultureApp/internal/logger"
	"github.com/paavkar/AgricultureApp/internal/utils"
)

// Config is resolved in three layers: built-in defaults, an optional
// YAML file named by APP_CONFIG_FILE, then environment variables on
// top.
type Config struct {
	Port          string   `yaml:"port"`
	JWTSecretKey  string   `yaml:"jwt_secret_key"`
	AllowOrigins  []string `yaml:"allow_origins"`
	NotifyBuffer  int      `yaml:"notify_buffer"`
	NotifyWorkers int      `yaml:"notify_workers"`
	// NotifyTransport selects the emitter: "sse" streams events to
	// connected clients, "log" only writes them to the log.
	NotifyTransport string `yaml:"notify_transport"`
}

func defaultConfig() Config {
	return Config{
		Port:            "8080",
		JWTSecretKey:    "defaultsecret",
		AllowOrigins:    []string{"http://localhost:3000", "http://localhost:5173"},
		NotifyBuffer:    256,
		NotifyWorkers:   4,
		NotifyTransport: "sse",
	}
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("APP_CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
		log.Info("Loaded config file", "path", path)
	}

	cfg.Port = utils.GetEnv("PORT", cfg.Port, log)
	cfg.JWTSecretKey = utils.GetEnv("JWT_SECRET_KEY", cfg.JWTSecretKey, log)
	cfg.NotifyBuffer = utils.GetEnvAsInt("NOTIFY_BUFFER", cfg.NotifyBuffer, log)
	cfg.NotifyWorkers = utils.GetEnvAsInt("NOTIFY_WORKERS", cfg.NotifyWorkers, log)
	cfg.NotifyTransport = utils.GetEnv("NOTIFY_TRANSPORT", cfg.NotifyTransport, log)

	return cfg, nil
}
