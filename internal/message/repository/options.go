package repository

import (
	"time"

	"insight-srv/internal/model"
)

type UpsertMessagesOptions struct {
	Messages []model.Message
}

type GetMessageOptions struct {
	OwnerID string
	ID      string
}

type ListMessagesOptions struct {
	OwnerID   string
	Platform  string
	AccountID string
	ChatID    string
	Label     string
	Flagged   *bool
	Limit     int64
	Offset    int64
}

type FindMessagesOptions struct {
	OwnerID   string
	Platform  string
	AccountID string
	ChatID    string
	Since     *time.Time
}

type UpdateFlagOptions struct {
	OwnerID   string
	ID        string
	IsFlagged bool
}

type UpsertAccountOptions struct {
	Account model.Account
}

type GetAccountOptions struct {
	OwnerID string
	ID      string
}
