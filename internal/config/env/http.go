package env

import (
	"errors"
	"os"

	"game_backend/internal/config"
)

const (
	httpAddrEnvName = "HTTP_ADDR"
)

type httpConfig struct {
	addr string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	addr := os.Getenv(httpAddrEnvName)
	if len(addr) == 0 {
		return nil, errors.New("http addr not found")
	}

	return &httpConfig{
		addr: addr,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.addr
}
