package message

import "errors"

var (
	ErrMessageNotFound = errors.New("message: message not found")
	ErrAccountNotFound = errors.New("message: account not found")
	ErrInvalidPlatform = errors.New("message: invalid platform")
	ErrInvalidLabel    = errors.New("message: invalid label")
	ErrEmptyBatch      = errors.New("message: empty batch")
)
