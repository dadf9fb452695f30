package model

import "errors"

// Ошибки, видимые пользователю. Классификация — см. обработчики API
var (
	// Ошибки валидации: состояние не изменяется, записей в леджер нет
	ErrInvalidStake  = errors.New("stake must be a positive finite number")
	ErrStakeTooSmall = errors.New("stake is below the minimum")
	ErrStakeTooLarge = errors.New("stake is above the maximum")
	ErrInvalidSide   = errors.New("side must be win or loss")
	ErrBettingClosed = errors.New("betting closed")

	// Отказы до каких-либо изменений
	ErrInsufficientFunds  = errors.New("not enough balance")
	ErrAccountNotPlayable = errors.New("account is not in a playable status")
	ErrUserNotFound       = errors.New("user not found")
)
