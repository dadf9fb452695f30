package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

// LobbyConfig Конфигурация лобби-режима
type LobbyConfig interface {
	BettingDuration() int  // секунды фазы ставок
	SpinningDuration() int // секунды фазы вращения
	ResultDuration() int   // секунды фазы результата
	WinForceCount() int    // минимум одинаковых символов на выигрышном поле
	LossSymbolCap() int    // максимум одинаковых символов на проигрышном поле
	WinnersCap() int       // размер публичной таблицы победителей
	ActiveWindowTicks() int
	SettleTimeout() time.Duration
}

// SoloConfig Конфигурация одиночного режима
type SoloConfig interface {
	MinBet() float64
	MaxBet() float64
	SymbolWeights() []int             // веса символов 0..N
	LineMultipliers() map[int]float64 // кратность за 4/5 в колонке (уже с дисконтом)
	ThreeKindMultiplier() float64
	ThreeKindChance() float64
	ScatterMultipliers() map[int]float64 // кратность за 5/6 скаттеров
	ScatterChance() float64              // шанс выплаты за 3-4 скаттера
	LossBands() []LossBand
}

// LossBand Полоса множителя проигрыша: [Min, Max) с весом Weight
type LossBand struct {
	Min    float64
	Max    float64
	Weight int
}
