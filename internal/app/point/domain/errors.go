package domain

import "errors"

var (
	// ErrInvalidAmount 金額必須為正數 (amount <= 0)
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrBalanceCapExceeded 充值後餘額會超過 MaxBalance
	ErrBalanceCapExceeded = errors.New("balance cap exceeded")

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = errors.New("insufficient balance")
)
