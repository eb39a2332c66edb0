package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"recipebox"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port           int           `default:"8080"`
	BaseURL        string        `default:"http://localhost:8080"`
	RequestTimeout time.Duration `default:"30s"`
}

type Auth struct {
	SecretKey string        `validate:"required"`
	TokenTTL  time.Duration `default:"168h"`
}

type ShortLink struct {
	Length         int `default:"5"`
	MaxAttempts    int `default:"10"`
	FallbackLength int `default:"8"`
}

type Pagination struct {
	PageSize int `default:"6"`
}

type Config struct {
	DB         DB
	Server     Server
	Auth       Auth
	ShortLink  ShortLink
	Pagination Pagination
}

const envPrefix = "RECIPEBOX" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if config.ShortLink.FallbackLength <= config.ShortLink.Length {
		return nil, fmt.Errorf("%w: ShortLink.FallbackLength must be greater than ShortLink.Length", ErrConfiguration)
	}

	return &config, nil
}
