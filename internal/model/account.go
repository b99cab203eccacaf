package model

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Account is a connected platform profile (a Telegram user, a WhatsApp
// business number, a YouTube channel...).
type Account struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Platform     Platform  `json:"platform"`
	ExternalID   string    `json:"external_id"`
	Username     string    `json:"username,omitempty"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	JoinedGroups int       `json:"joined_groups"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AccountRow is the database projection of Account.
type AccountRow struct {
	ID           string
	OwnerID      string
	Platform     string
	ExternalID   string
	Username     null.String
	FirstName    null.String
	LastName     null.String
	JoinedGroups null.Int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewAccountFromDB(row AccountRow) Account {
	return Account{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		Platform:     Platform(row.Platform),
		ExternalID:   row.ExternalID,
		Username:     row.Username.String,
		FirstName:    row.FirstName.String,
		LastName:     row.LastName.String,
		JoinedGroups: row.JoinedGroups.Int,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
