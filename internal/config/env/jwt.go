package env

import (
	"fmt"
	"os"
	"time"

	"game_backend/internal/config"
)

const (
	accessTokenKeyEnvName      = "ACCESS_TOKEN"
	accessTokenDurationEnvName = "ACCESS_TOKEN_DURATION"
)

type jwtConfig struct {
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	accessToken := os.Getenv(accessTokenKeyEnvName)
	if len(accessToken) == 0 {
		return nil, fmt.Errorf("%s not found", accessTokenKeyEnvName)
	}

	accessDurationStr := os.Getenv(accessTokenDurationEnvName)
	if len(accessDurationStr) == 0 {
		return nil, fmt.Errorf("%s not found", accessTokenDurationEnvName)
	}
	accessDuration, err := time.ParseDuration(accessDurationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %v", accessTokenDurationEnvName, err)
	}

	return &jwtConfig{
		accessTokenSecretKey: accessToken,
		accessTokenDuration:  accessDuration,
	}, nil
}

func (cfg *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(cfg.accessTokenSecretKey)
}

func (cfg *jwtConfig) AccessTokenDuration() time.Duration {
	return cfg.accessTokenDuration
}
