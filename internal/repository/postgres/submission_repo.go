package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"fhsis/internal/domain"
	"fhsis/internal/port"
)

type submissionRepo struct {
	db *sqlx.DB
}

// NewSubmissionRepo creates a new PostgreSQL-backed SubmissionRepository.
func NewSubmissionRepo(db *sqlx.DB) port.SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) CreateTemplate(ctx context.Context, tpl *domain.ReportSubmissionTemplate) error {
	tpl.CreatedAt = time.Now().UTC()

	query := `INSERT INTO report_submission_templates (barangay_id, report_month, report_year, form_type, due_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		tpl.BarangayID, tpl.ReportMonth, tpl.ReportYear, tpl.FormType, tpl.DueAt, tpl.CreatedAt).Scan(&tpl.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateTemplate
		}
		return fmt.Errorf("submissionRepo.CreateTemplate: %w", err)
	}
	return nil
}

func (r *submissionRepo) OpenSubmission(ctx context.Context, barangayID int64, month, year int, form domain.FormType) (*domain.ReportStatus, *domain.ReportSubmission, error) {
	var tpl domain.ReportSubmissionTemplate
	err := r.db.GetContext(ctx, &tpl,
		`SELECT * FROM report_submission_templates
		 WHERE barangay_id = $1 AND report_month = $2 AND report_year = $3 AND form_type = $4`,
		barangayID, month, year, form)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("submissionRepo.OpenSubmission template: %w", err)
	}

	// Reuse the latest submission for the template regardless of status; the
	// submit guard is what rejects finalized ones.
	var sub domain.ReportSubmission
	err = r.db.GetContext(ctx, &sub,
		`SELECT * FROM report_submissions WHERE template_id = $1 ORDER BY id DESC LIMIT 1`, tpl.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("submissionRepo.OpenSubmission submission: %w", err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		now := time.Now().UTC()
		sub = domain.ReportSubmission{
			TemplateID: tpl.ID,
			Status:     domain.SubmissionPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		err = r.db.QueryRowxContext(ctx,
			`INSERT INTO report_submissions (template_id, status, created_at, updated_at)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			sub.TemplateID, sub.Status, sub.CreatedAt, sub.UpdatedAt).Scan(&sub.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("submissionRepo.OpenSubmission insert submission: %w", err)
		}
	}

	var status domain.ReportStatus
	err = r.db.GetContext(ctx, &status,
		`SELECT id, submission_id, approval_status, reviewed_by, reviewed_at
		 FROM report_statuses WHERE submission_id = $1 ORDER BY id DESC LIMIT 1`, sub.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("submissionRepo.OpenSubmission status: %w", err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		status = domain.ReportStatus{
			SubmissionID:   sub.ID,
			ApprovalStatus: domain.ApprovalPending,
		}
		err = r.db.QueryRowxContext(ctx,
			`INSERT INTO report_statuses (submission_id, approval_status) VALUES ($1, $2) RETURNING id`,
			status.SubmissionID, status.ApprovalStatus).Scan(&status.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("submissionRepo.OpenSubmission insert status: %w", err)
		}
	}

	return &status, &sub, nil
}

// lockedSection is the guard's view of one open report section, read under
// FOR UPDATE so concurrent submits serialize on the submission row.
type lockedSection struct {
	ReportStatusID int64                   `db:"report_status_id"`
	SubmissionID   int64                   `db:"submission_id"`
	Status         domain.SubmissionStatus `db:"status"`
	FormType       domain.FormType         `db:"form_type"`
	DueAt          time.Time               `db:"due_at"`
}

func lockSection(ctx context.Context, tx *sqlx.Tx, reportStatusID int64) (*lockedSection, error) {
	var sec lockedSection
	err := tx.GetContext(ctx, &sec,
		`SELECT rs.id AS report_status_id, sub.id AS submission_id, sub.status, t.form_type, t.due_at
		 FROM report_statuses rs
		 JOIN report_submissions sub ON sub.id = rs.submission_id
		 JOIN report_submission_templates t ON t.id = sub.template_id
		 WHERE rs.id = $1
		 FOR UPDATE OF sub`, reportStatusID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("locking report status %d: %w", reportStatusID, err)
	}
	return &sec, nil
}

// finalizeSection flips the locked submission to submitted or submitted
// late against its own template due date. Each section is evaluated
// independently; a late M1 never taints an on-time M2.
func finalizeSection(ctx context.Context, tx *sqlx.Tx, sec *lockedSection, now time.Time) error {
	status := domain.SubmissionStatusAt(sec.DueAt, now)
	_, err := tx.ExecContext(ctx,
		`UPDATE report_submissions SET status = $1, submitted_at = $2, updated_at = $2 WHERE id = $3`,
		status, now, sec.SubmissionID)
	if err != nil {
		return fmt.Errorf("finalizing submission %d: %w", sec.SubmissionID, err)
	}
	return nil
}

func (r *submissionRepo) FinalizeReport(ctx context.Context, input port.FinalizeReportInput) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("submissionRepo.FinalizeReport begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Guard: lock every referenced submission before any write, and reject
	// the whole call if either section is already finalized. No merge or
	// overwrite semantics apply to finalized reports.
	var m1Sec, m2Sec *lockedSection
	if input.M1ReportStatusID != nil {
		if m1Sec, err = lockSection(ctx, tx, *input.M1ReportStatusID); err != nil {
			return err
		}
		if m1Sec.FormType != domain.FormM1 {
			return domain.ErrNotFound
		}
		if m1Sec.Status.Finalized() {
			return domain.ErrAlreadySubmitted
		}
	}
	if input.M2ReportStatusID != nil {
		if m2Sec, err = lockSection(ctx, tx, *input.M2ReportStatusID); err != nil {
			return err
		}
		if m2Sec.FormType != domain.FormM2 {
			return domain.ErrNotFound
		}
		if m2Sec.Status.Finalized() {
			return domain.ErrAlreadySubmitted
		}
	}

	if m1Sec != nil && input.M1 != nil {
		if err := writeM1Rows(ctx, tx, m1Sec.ReportStatusID, input.M1); err != nil {
			return err
		}
		if err := finalizeSection(ctx, tx, m1Sec, input.Now); err != nil {
			return err
		}
	}
	if m2Sec != nil {
		if err := writeM2Rows(ctx, tx, m2Sec.ReportStatusID, input.M2Rows); err != nil {
			return err
		}
		if err := finalizeSection(ctx, tx, m2Sec, input.Now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("submissionRepo.FinalizeReport commit: %w", err)
	}
	return nil
}

// writeM1Rows replaces the three M1 sections for a report status. Deleting
// first keeps a re-opened pending submission from accumulating duplicates.
func writeM1Rows(ctx context.Context, tx *sqlx.Tx, statusID int64, m1 *port.ResolvedM1) error {
	for _, table := range []string{"fp_report_rows", "service_data_rows", "wra_rows"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE report_status_id = $1", table), statusID); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	_, err := tx.ExecContext(ctx,
		"UPDATE report_statuses SET projected_population = $1 WHERE id = $2",
		m1.ProjectedPopulation, statusID)
	if err != nil {
		return fmt.Errorf("updating projected population: %w", err)
	}

	for _, row := range m1.FPRows {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO fp_report_rows (report_status_id, fp_method_id, age_category_id,
				current_users_beginning_month, new_acceptors_prev_month, other_acceptors_present_month,
				drop_outs_present_month, current_users_end_month, new_acceptors_present_month)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			statusID, row.FPMethodID, row.AgeCategoryID,
			row.CurrentUsersBeginningMonth, row.NewAcceptorsPrevMonth, row.OtherAcceptorsPresentMonth,
			row.DropOutsPresentMonth, row.CurrentUsersEndMonth, row.NewAcceptorsPresentMonth)
		if err != nil {
			return fmt.Errorf("inserting fp row: %w", err)
		}
	}

	for _, row := range m1.ServiceRows {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO service_data_rows (report_status_id, service_id, indicator_id, age_category_id, value_type, value, remarks)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			statusID, row.ServiceID, row.IndicatorID, row.AgeCategoryID, row.ValueType, row.Value, row.Remarks)
		if err != nil {
			return fmt.Errorf("inserting service data row: %w", err)
		}
	}

	for _, row := range m1.WRARows {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO wra_rows (report_status_id, age_category_id, unmet_need_modern_fp)
			 VALUES ($1, $2, $3)`,
			statusID, row.AgeCategoryID, row.UnmetNeedModernFP)
		if err != nil {
			return fmt.Errorf("inserting wra row: %w", err)
		}
	}

	return nil
}

func writeM2Rows(ctx context.Context, tx *sqlx.Tx, statusID int64, rows []domain.MorbidityReportRow) error {
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM morbidity_rows WHERE report_status_id = $1", statusID); err != nil {
		return fmt.Errorf("clearing morbidity_rows: %w", err)
	}
	for _, row := range rows {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO morbidity_rows (report_status_id, disease_id, age_category_id, male, female)
			 VALUES ($1, $2, $3, $4, $5)`,
			statusID, row.DiseaseID, row.AgeCategoryID, row.Male, row.Female)
		if err != nil {
			return fmt.Errorf("inserting morbidity row: %w", err)
		}
	}
	return nil
}

func (r *submissionRepo) ListOverview(ctx context.Context, barangayID *int64, month, year int) ([]domain.SubmissionOverviewRow, error) {
	query := `SELECT sub.id AS submission_id, rs.id AS report_status_id, b.id AS barangay_id, b.name AS barangay_name,
			t.report_month, t.report_year, t.form_type, sub.status, rs.approval_status
		FROM report_submissions sub
		JOIN report_statuses rs ON rs.submission_id = sub.id
		JOIN report_submission_templates t ON t.id = sub.template_id
		JOIN barangays b ON b.id = t.barangay_id
		WHERE t.report_month = $1 AND t.report_year = $2`
	args := []interface{}{month, year}
	if barangayID != nil {
		query += " AND t.barangay_id = $3"
		args = append(args, *barangayID)
	}
	query += " ORDER BY b.name, t.form_type"

	var rows []domain.SubmissionOverviewRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("submissionRepo.ListOverview: %w", err)
	}
	return rows, nil
}

func (r *submissionRepo) SetApproval(ctx context.Context, reportStatusID int64, approval domain.ApprovalStatus, reviewerID int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE report_statuses SET approval_status = $1, reviewed_by = $2, reviewed_at = $3 WHERE id = $4`,
		approval, reviewerID, time.Now().UTC(), reportStatusID)
	if err != nil {
		return fmt.Errorf("submissionRepo.SetApproval: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
