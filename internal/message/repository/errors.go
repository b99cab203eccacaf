package repository

import "errors"

var (
	ErrMessageNotFound     = errors.New("repository: message not found")
	ErrAccountNotFound     = errors.New("repository: account not found")
	ErrMessageUpsertFailed = errors.New("repository: failed to upsert messages")
	ErrAccountUpsertFailed = errors.New("repository: failed to upsert account")
	ErrMessageUpdateFailed = errors.New("repository: failed to update message")
	ErrDecryptFailed       = errors.New("repository: failed to decrypt message text")
	ErrCacheMiss           = errors.New("repository: cache miss")
)
