package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/internal/report/repository"
)

const insertReportQuery = `INSERT INTO ` + tableReports + ` (` + reportColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

const updateCompletedQuery = `UPDATE ` + tableReports + ` SET
	status = $2, file_url = $3, file_size_bytes = $4, file_format = $5, total_messages = $6,
	scam_risk = $7, generation_time_ms = $8, completed_at = $9, error_message = NULL, updated_at = $10
WHERE id = $1`

const updateFailedQuery = `UPDATE ` + tableReports + ` SET status = $2, error_message = $3, updated_at = $4 WHERE id = $1`

// CreateReport - Insert a new PROCESSING report.
func (r *implRepository) CreateReport(ctx context.Context, opts repository.CreateReportOptions) (model.Report, error) {
	row := buildCreateReport(opts, time.Now())

	if _, err := r.db.ExecContext(ctx, insertReportQuery, reportRowArgs(row)...); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CreateReport: Failed to insert report: %v", err)
		return model.Report{}, repository.ErrReportCreateFailed
	}

	return model.NewReportFromDB(row), nil
}

// GetReportByID - Get a report of the owner by primary key.
func (r *implRepository) GetReportByID(ctx context.Context, opts repository.GetReportOptions) (model.Report, error) {
	query := "SELECT " + reportColumns + " FROM " + tableReports + " WHERE id = $1 AND owner_id = $2"

	row, err := scanReportRow(r.db.QueryRowContext(ctx, query, opts.ID, opts.OwnerID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Report{}, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.GetReportByID: Failed to get report: %v", err)
		return model.Report{}, err
	}

	return model.NewReportFromDB(row), nil
}

// FindByParamsHash - Find the newest report by params_hash and optional status.
func (r *implRepository) FindByParamsHash(ctx context.Context, opts repository.FindByParamsHashOptions) (*model.Report, error) {
	query, args := buildFindByParamsHashQuery(opts)

	row, err := scanReportRow(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.FindByParamsHash: Failed to find report: %v", err)
		return nil, err
	}

	rpt := model.NewReportFromDB(row)
	return &rpt, nil
}

// UpdateCompleted - Mark report as COMPLETED with output metadata.
func (r *implRepository) UpdateCompleted(ctx context.Context, opts repository.UpdateCompletedOptions) error {
	res, err := r.db.ExecContext(ctx, updateCompletedQuery,
		opts.ID,
		report.StatusCompleted,
		opts.FileURL,
		opts.FileSizeBytes,
		opts.FileFormat,
		opts.TotalMessages,
		opts.ScamRisk,
		opts.GenerationTimeMs,
		opts.CompletedAt,
		time.Now(),
	)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateCompleted: Failed to update report %s: %v", opts.ID, err)
		return repository.ErrReportUpdateFailed
	}
	return r.checkAffected(ctx, res, opts.ID)
}

// UpdateFailed - Mark report as FAILED with error message.
func (r *implRepository) UpdateFailed(ctx context.Context, opts repository.UpdateFailedOptions) error {
	res, err := r.db.ExecContext(ctx, updateFailedQuery, opts.ID, report.StatusFailed, opts.ErrorMessage, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateFailed: Failed to update report %s: %v", opts.ID, err)
		return repository.ErrReportUpdateFailed
	}
	return r.checkAffected(ctx, res, opts.ID)
}

// ListReports - List the owner's reports, newest first, with the total count.
func (r *implRepository) ListReports(ctx context.Context, opts repository.ListReportsOptions) ([]model.Report, int64, error) {
	query, countQuery, args := buildListReportsQuery(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to count reports: %v", err)
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to list reports: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	reports := make([]model.Report, 0)
	for rows.Next() {
		row, err := scanReportRow(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListReports: Failed to scan report: %v", err)
			return nil, 0, err
		}
		reports = append(reports, model.NewReportFromDB(row))
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListReports: Rows error: %v", err)
		return nil, 0, err
	}

	return reports, total, nil
}

func (r *implRepository) checkAffected(ctx context.Context, res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.checkAffected: RowsAffected failed for %s: %v", id, err)
		return repository.ErrReportUpdateFailed
	}
	if n == 0 {
		return repository.ErrReportNotFound
	}
	return nil
}
