package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"insight-srv/internal/message/repository"
	"insight-srv/internal/model"
)

const upsertAccountQuery = `INSERT INTO ` + tableAccounts + ` (` + accountColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (owner_id, platform, external_id) DO UPDATE SET
	username = COALESCE(EXCLUDED.username, ` + tableAccounts + `.username),
	first_name = COALESCE(EXCLUDED.first_name, ` + tableAccounts + `.first_name),
	last_name = COALESCE(EXCLUDED.last_name, ` + tableAccounts + `.last_name),
	joined_groups = COALESCE(EXCLUDED.joined_groups, ` + tableAccounts + `.joined_groups),
	updated_at = EXCLUDED.updated_at
RETURNING ` + accountColumns

// UpsertAccount - Create the account or refresh its profile, keyed by platform identity.
func (r *implRepository) UpsertAccount(ctx context.Context, opts repository.UpsertAccountOptions) (model.Account, error) {
	a := opts.Account
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now()

	row, err := scanAccountRow(r.db.QueryRowContext(ctx, upsertAccountQuery,
		a.ID,
		a.OwnerID,
		string(a.Platform),
		a.ExternalID,
		null.NewString(a.Username, a.Username != ""),
		null.NewString(a.FirstName, a.FirstName != ""),
		null.NewString(a.LastName, a.LastName != ""),
		null.NewInt(a.JoinedGroups, a.JoinedGroups > 0),
		now,
		now,
	))
	if err != nil {
		r.l.Errorf(ctx, "message.repository.postgre.UpsertAccount: Failed to upsert account: %v", err)
		return model.Account{}, repository.ErrAccountUpsertFailed
	}

	return model.NewAccountFromDB(row), nil
}

// GetAccountByID - Get an account of an owner.
func (r *implRepository) GetAccountByID(ctx context.Context, opts repository.GetAccountOptions) (model.Account, error) {
	query := "SELECT " + accountColumns + " FROM " + tableAccounts + " WHERE owner_id = $1 AND id = $2"

	row, err := scanAccountRow(r.db.QueryRowContext(ctx, query, opts.OwnerID, opts.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, repository.ErrAccountNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "message.repository.postgre.GetAccountByID: Failed to get account: %v", err)
		return model.Account{}, err
	}

	return model.NewAccountFromDB(row), nil
}

// CountChats - Count distinct chats with messages of the account.
func (r *implRepository) CountChats(ctx context.Context, opts repository.GetAccountOptions) (int, error) {
	query := "SELECT COUNT(DISTINCT chat_id) FROM " + tableMessages + " WHERE owner_id = $1 AND account_id = $2"

	var n int
	if err := r.db.QueryRowContext(ctx, query, opts.OwnerID, opts.ID).Scan(&n); err != nil {
		r.l.Errorf(ctx, "message.repository.postgre.CountChats: Failed to count chats: %v", err)
		return 0, err
	}
	return n, nil
}
