package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"insight-srv/internal/message/repository"
	"insight-srv/internal/model"
)

// UpsertMessages - Insert or refresh a batch of messages in one transaction.
func (r *implRepository) UpsertMessages(ctx context.Context, opts repository.UpsertMessagesOptions) (int, error) {
	if len(opts.Messages) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "message.repository.postgre.UpsertMessages: Failed to begin tx: %v", err)
		return 0, repository.ErrMessageUpsertFailed
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertMessageQuery)
	if err != nil {
		r.l.Errorf(ctx, "message.repository.postgre.UpsertMessages: Failed to prepare statement: %v", err)
		return 0, repository.ErrMessageUpsertFailed
	}
	defer stmt.Close()

	now := time.Now()
	for _, m := range opts.Messages {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		m.UpdatedAt = now

		cipher, err := r.enc.Encrypt(m.Text)
		if err != nil {
			r.l.Errorf(ctx, "message.repository.postgre.UpsertMessages: Failed to encrypt text of %s: %v", m.ExternalID, err)
			return 0, repository.ErrMessageUpsertFailed
		}

		if _, err := stmt.ExecContext(ctx, messageRowArgs(m.ToDBRow(cipher))...); err != nil {
			r.l.Errorf(ctx, "message.repository.postgre.UpsertMessages: Failed to upsert message %s: %v", m.ExternalID, err)
			return 0, repository.ErrMessageUpsertFailed
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "message.repository.postgre.UpsertMessages: Failed to commit: %v", err)
		return 0, repository.ErrMessageUpsertFailed
	}

	return len(opts.Messages), nil
}

// GetMessageByID - Get one message of an owner.
func (r *implRepository) GetMessageByID(ctx context.Context, opts repository.GetMessageOptions) (model.Message, error) {
	query := "SELECT " + messageColumns + " FROM " + tableMessages + " WHERE owner_id = $1 AND id = $2"

	row, err := scanMessageRow(r.db.QueryRowContext(ctx, query, opts.OwnerID, opts.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Message{}, repository.ErrMessageNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "message.repository.postgre.GetMessageByID: Failed to get message: %v", err)
		return model.Message{}, err
	}

	return r.toMessage(ctx, row)
}

// ListMessages - List messages newest first together with the unpaginated total.
func (r *implRepository) ListMessages(ctx context.Context, opts repository.ListMessagesOptions) ([]model.Message, int64, error) {
	query, args, countQuery, countArgs := buildListMessagesQuery(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "message.repository.postgre.ListMessages: Failed to count messages: %v", err)
		return nil, 0, err
	}

	msgs, err := r.queryMessages(ctx, query, args)
	if err != nil {
		r.l.Errorf(ctx, "message.repository.postgre.ListMessages: Failed to list messages: %v", err)
		return nil, 0, err
	}

	return msgs, total, nil
}

// FindMessages - Load every message matching the filter for analysis.
func (r *implRepository) FindMessages(ctx context.Context, opts repository.FindMessagesOptions) ([]model.Message, error) {
	query, args := buildFindMessagesQuery(opts)

	msgs, err := r.queryMessages(ctx, query, args)
	if err != nil {
		r.l.Errorf(ctx, "message.repository.postgre.FindMessages: Failed to find messages: %v", err)
		return nil, err
	}

	return msgs, nil
}

// UpdateFlag - Set the moderation flag and return the updated message.
func (r *implRepository) UpdateFlag(ctx context.Context, opts repository.UpdateFlagOptions) (model.Message, error) {
	query := "UPDATE " + tableMessages + " SET is_flagged = $1, updated_at = $2 WHERE owner_id = $3 AND id = $4 RETURNING " + messageColumns

	row, err := scanMessageRow(r.db.QueryRowContext(ctx, query, opts.IsFlagged, time.Now(), opts.OwnerID, opts.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Message{}, repository.ErrMessageNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "message.repository.postgre.UpdateFlag: Failed to update message: %v", err)
		return model.Message{}, repository.ErrMessageUpdateFailed
	}

	return r.toMessage(ctx, row)
}

func (r *implRepository) queryMessages(ctx context.Context, query string, args []any) ([]model.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := make([]model.Message, 0)
	for rows.Next() {
		row, err := scanMessageRow(rows)
		if err != nil {
			return nil, err
		}
		m, err := r.toMessage(ctx, row)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return msgs, nil
}

func (r *implRepository) toMessage(ctx context.Context, row model.MessageRow) (model.Message, error) {
	text, err := r.enc.Decrypt(row.TextEncrypted)
	if err != nil {
		r.l.Errorf(ctx, "message.repository.postgre.toMessage: Failed to decrypt message %s: %v", row.ID, err)
		return model.Message{}, repository.ErrDecryptFailed
	}
	return model.NewMessageFromDB(row, text), nil
}
