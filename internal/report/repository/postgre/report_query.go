package postgre

import (
	"fmt"

	"insight-srv/internal/report/repository"
)

const (
	tableReports = "reports"

	reportColumns = "id, owner_id, account_id, platform, title, report_type, params_hash, params, status, error_message, " +
		"file_url, file_size_bytes, file_format, total_messages, scam_risk, generation_time_ms, completed_at, created_at, updated_at"
)

// buildFindByParamsHashQuery - Newest report of the owner with the same parameters.
func buildFindByParamsHashQuery(opts repository.FindByParamsHashOptions) (string, []any) {
	query := "SELECT " + reportColumns + " FROM " + tableReports + " WHERE owner_id = $1 AND params_hash = $2"
	args := []any{opts.OwnerID, opts.ParamsHash}
	if opts.Status != "" {
		query += " AND status = $3"
		args = append(args, opts.Status)
	}
	return query + " ORDER BY created_at DESC LIMIT 1", args
}

// buildListReportsQuery - Build the page query and the count query. Both share the filter arguments.
func buildListReportsQuery(opts repository.ListReportsOptions) (string, string, []any) {
	filter := " WHERE owner_id = $1"
	args := []any{opts.OwnerID}
	if opts.Status != "" {
		filter += " AND status = $2"
		args = append(args, opts.Status)
	}

	countQuery := "SELECT COUNT(*) FROM " + tableReports + filter
	query := "SELECT " + reportColumns + " FROM " + tableReports + filter + " ORDER BY created_at DESC"
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}
	if opts.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", opts.Offset)
	}
	return query, countQuery, args
}
