package postgre

import (
	"fmt"
	"strings"

	"insight-srv/internal/message/repository"
)

const (
	tableMessages = "messages"
	tableAccounts = "accounts"

	messageColumns = "id, owner_id, platform, account_id, external_id, chat_id, chat_name, sender_id, sender_name, " +
		"text_encrypted, sent_at, label, is_flagged, risk_score, sentiment, compound, scam_score, batch_id, created_at, updated_at"
	accountColumns = "id, owner_id, platform, external_id, username, first_name, last_name, joined_groups, created_at, updated_at"
)

// where collects AND-ed conditions with positional arguments. Each clause
// holds a single %d verb for its placeholder index.
type where struct {
	clauses []string
	args    []any
}

func (w *where) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(clause, len(w.args)))
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func (w *where) next() int {
	return len(w.args) + 1
}

func buildMessageFilter(ownerID, platform, accountID, chatID string) *where {
	w := &where{}
	w.add("owner_id = $%d", ownerID)
	if platform != "" {
		w.add("platform = $%d", platform)
	}
	if accountID != "" {
		w.add("account_id = $%d", accountID)
	}
	if chatID != "" {
		w.add("chat_id = $%d", chatID)
	}
	return w
}

// buildListMessagesQuery - Build the page query and the count query, each with its arguments.
func buildListMessagesQuery(opts repository.ListMessagesOptions) (string, []any, string, []any) {
	w := buildMessageFilter(opts.OwnerID, opts.Platform, opts.AccountID, opts.ChatID)
	if opts.Label != "" {
		w.add("COALESCE(label, 'other') = $%d", opts.Label)
	}
	if opts.Flagged != nil {
		w.add("is_flagged = $%d", *opts.Flagged)
	}

	countQuery := "SELECT COUNT(*) FROM " + tableMessages + w.String()
	countArgs := append([]any(nil), w.args...)

	query := "SELECT " + messageColumns + " FROM " + tableMessages + w.String() + " ORDER BY sent_at DESC, id"
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", w.next())
		w.args = append(w.args, opts.Limit)
	}
	if opts.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", w.next())
		w.args = append(w.args, opts.Offset)
	}

	return query, w.args, countQuery, countArgs
}

// buildFindMessagesQuery - Build the unpaginated analysis query.
func buildFindMessagesQuery(opts repository.FindMessagesOptions) (string, []any) {
	w := buildMessageFilter(opts.OwnerID, opts.Platform, opts.AccountID, opts.ChatID)
	if opts.Since != nil {
		w.add("sent_at >= $%d", *opts.Since)
	}
	return "SELECT " + messageColumns + " FROM " + tableMessages + w.String() + " ORDER BY sent_at ASC, id", w.args
}
