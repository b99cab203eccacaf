package repository

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name MessageRepository
type MessageRepository interface {
	UpsertMessages(ctx context.Context, opts UpsertMessagesOptions) (int, error)
	GetMessageByID(ctx context.Context, opts GetMessageOptions) (model.Message, error)
	ListMessages(ctx context.Context, opts ListMessagesOptions) ([]model.Message, int64, error)
	// FindMessages returns every matching message, oldest first.
	FindMessages(ctx context.Context, opts FindMessagesOptions) ([]model.Message, error)
	UpdateFlag(ctx context.Context, opts UpdateFlagOptions) (model.Message, error)
}

//go:generate mockery --name AccountRepository
type AccountRepository interface {
	UpsertAccount(ctx context.Context, opts UpsertAccountOptions) (model.Account, error)
	GetAccountByID(ctx context.Context, opts GetAccountOptions) (model.Account, error)
	// CountChats returns the number of distinct chats the account has messages in.
	CountChats(ctx context.Context, opts GetAccountOptions) (int, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	MessageRepository
	AccountRepository
}

// CacheRepository stores serialized analyses under an owner namespace.
// GetAnalysis returns ErrCacheMiss when nothing is stored for name.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetAnalysis(ctx context.Context, ownerID, name string) ([]byte, error)
	SaveAnalysis(ctx context.Context, ownerID, name string, data []byte) error
	InvalidateOwner(ctx context.Context, ownerID string) error
}
