package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"game_backend/internal/config"

	"gopkg.in/yaml.v3"
)

// Структура config.yaml
type gameYAML struct {
	Lobby lobbyYAML `yaml:"lobby"`
	Solo  soloYAML  `yaml:"solo"`
}

type lobbyYAML struct {
	BettingDuration   int `yaml:"betting_duration"`
	SpinningDuration  int `yaml:"spinning_duration"`
	ResultDuration    int `yaml:"result_duration"`
	WinForceCount     int `yaml:"win_force_count"`
	LossSymbolCap     int `yaml:"loss_symbol_cap"`
	WinnersCap        int `yaml:"winners_cap"`
	ActiveWindowTicks int `yaml:"active_window_ticks"`
	SettleTimeoutSec  int `yaml:"settle_timeout_sec"`
}

type soloYAML struct {
	MinBet              float64         `yaml:"min_bet"`
	MaxBet              float64         `yaml:"max_bet"`
	SymbolWeights       []int           `yaml:"symbol_weights"`
	LineMultipliers     map[int]float64 `yaml:"line_multipliers"`
	ThreeKindMultiplier float64         `yaml:"three_kind_multiplier"`
	ThreeKindChance     float64         `yaml:"three_kind_chance"`
	ScatterMultipliers  map[int]float64 `yaml:"scatter_multipliers"`
	ScatterChance       float64         `yaml:"scatter_chance"`
	LossBands           []lossBandYAML  `yaml:"loss_bands"`
}

type lossBandYAML struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Weight int     `yaml:"weight"`
}

func parseGameYAML(path string) (*gameYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %v", err)
	}

	var cfg gameYAML
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %v", err)
	}
	return &cfg, nil
}

type lobbyConfig struct {
	y lobbyYAML
}

// NewLobbyConfigFromYAML читает конфигурацию лобби из config.yaml
func NewLobbyConfigFromYAML(path string) (config.LobbyConfig, error) {
	cfg, err := parseGameYAML(path)
	if err != nil {
		return nil, err
	}
	l := cfg.Lobby
	if l.BettingDuration <= 0 || l.SpinningDuration <= 0 || l.ResultDuration <= 0 {
		return nil, errors.New("lobby phase durations must be positive")
	}
	if l.WinForceCount <= l.LossSymbolCap {
		return nil, errors.New("win_force_count must be greater than loss_symbol_cap")
	}
	if l.WinnersCap <= 0 {
		l.WinnersCap = 10
	}
	if l.ActiveWindowTicks <= 0 {
		l.ActiveWindowTicks = 60
	}
	if l.SettleTimeoutSec <= 0 {
		l.SettleTimeoutSec = 10
	}
	return &lobbyConfig{y: l}, nil
}

func (c *lobbyConfig) BettingDuration() int   { return c.y.BettingDuration }
func (c *lobbyConfig) SpinningDuration() int  { return c.y.SpinningDuration }
func (c *lobbyConfig) ResultDuration() int    { return c.y.ResultDuration }
func (c *lobbyConfig) WinForceCount() int     { return c.y.WinForceCount }
func (c *lobbyConfig) LossSymbolCap() int     { return c.y.LossSymbolCap }
func (c *lobbyConfig) WinnersCap() int        { return c.y.WinnersCap }
func (c *lobbyConfig) ActiveWindowTicks() int { return c.y.ActiveWindowTicks }
func (c *lobbyConfig) SettleTimeout() time.Duration {
	return time.Duration(c.y.SettleTimeoutSec) * time.Second
}

type soloConfig struct {
	y     soloYAML
	bands []config.LossBand
}

// NewSoloConfigFromYAML читает конфигурацию одиночного режима из config.yaml
func NewSoloConfigFromYAML(path string) (config.SoloConfig, error) {
	cfg, err := parseGameYAML(path)
	if err != nil {
		return nil, err
	}
	s := cfg.Solo
	if s.MinBet <= 0 || s.MaxBet < s.MinBet {
		return nil, errors.New("invalid solo bet limits")
	}
	if len(s.SymbolWeights) == 0 {
		return nil, errors.New("solo symbol weights are empty")
	}
	if len(s.LossBands) == 0 {
		return nil, errors.New("solo loss bands are empty")
	}

	bands := make([]config.LossBand, 0, len(s.LossBands))
	for _, b := range s.LossBands {
		if b.Min >= b.Max || b.Weight <= 0 {
			return nil, errors.New("invalid solo loss band")
		}
		bands = append(bands, config.LossBand{Min: b.Min, Max: b.Max, Weight: b.Weight})
	}

	return &soloConfig{y: s, bands: bands}, nil
}

func (c *soloConfig) MinBet() float64                     { return c.y.MinBet }
func (c *soloConfig) MaxBet() float64                     { return c.y.MaxBet }
func (c *soloConfig) SymbolWeights() []int                { return c.y.SymbolWeights }
func (c *soloConfig) LineMultipliers() map[int]float64    { return c.y.LineMultipliers }
func (c *soloConfig) ThreeKindMultiplier() float64        { return c.y.ThreeKindMultiplier }
func (c *soloConfig) ThreeKindChance() float64            { return c.y.ThreeKindChance }
func (c *soloConfig) ScatterMultipliers() map[int]float64 { return c.y.ScatterMultipliers }
func (c *soloConfig) ScatterChance() float64              { return c.y.ScatterChance }
func (c *soloConfig) LossBands() []config.LossBand        { return c.bands }
