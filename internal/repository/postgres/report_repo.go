package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fhsis/internal/domain"
	"fhsis/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

// periodClause scopes row queries to finalized submissions for the requested
// period, optionally narrowed to one barangay. Without a barangay the query
// aggregates across the whole municipality.
func periodClause(f domain.ReportPeriodFilter) (clause string, args []interface{}) {
	clause = `sub.status IN ('submitted', 'submitted late')
		AND t.report_month = $1 AND t.report_year = $2`
	args = []interface{}{f.ReportMonth, f.ReportYear}
	if f.BarangayID != nil {
		clause += " AND t.barangay_id = $3"
		args = append(args, *f.BarangayID)
	}
	return clause, args
}

func (r *reportRepo) FamilyPlanningRows(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.FPJoinedRow, int, error) {
	clause, args := periodClause(f)

	query := fmt.Sprintf(`SELECT rw.fp_method_id, m.name AS method_name, ac.label AS age_label,
			rw.current_users_beginning_month, rw.new_acceptors_prev_month, rw.other_acceptors_present_month,
			rw.drop_outs_present_month, rw.current_users_end_month, rw.new_acceptors_present_month
		FROM fp_report_rows rw
		JOIN report_statuses rs ON rs.id = rw.report_status_id
		JOIN report_submissions sub ON sub.id = rs.submission_id
		JOIN report_submission_templates t ON t.id = sub.template_id
		JOIN fp_methods m ON m.id = rw.fp_method_id
		JOIN age_categories ac ON ac.id = rw.age_category_id
		WHERE %s
		ORDER BY m.name, ac.label`, clause)

	var rows []domain.FPJoinedRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("reportRepo.FamilyPlanningRows: %w", err)
	}

	popQuery := fmt.Sprintf(`SELECT COALESCE(SUM(rs.projected_population), 0)
		FROM report_statuses rs
		JOIN report_submissions sub ON sub.id = rs.submission_id
		JOIN report_submission_templates t ON t.id = sub.template_id
		WHERE t.form_type = 'M1' AND %s`, clause)

	var projectedPopulation int
	if err := r.db.GetContext(ctx, &projectedPopulation, popQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("reportRepo.FamilyPlanningRows population: %w", err)
	}

	return rows, projectedPopulation, nil
}

func (r *reportRepo) WRARows(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.WRAJoinedRow, error) {
	clause, args := periodClause(f)

	query := fmt.Sprintf(`SELECT ac.label AS age_label, rw.unmet_need_modern_fp
		FROM wra_rows rw
		JOIN report_statuses rs ON rs.id = rw.report_status_id
		JOIN report_submissions sub ON sub.id = rs.submission_id
		JOIN report_submission_templates t ON t.id = sub.template_id
		JOIN age_categories ac ON ac.id = rw.age_category_id
		WHERE %s
		ORDER BY ac.label`, clause)

	var rows []domain.WRAJoinedRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.WRARows: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) ServiceDataRows(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.ServiceJoinedRow, error) {
	clause, args := periodClause(f)

	query := fmt.Sprintf(`SELECT rw.service_id, s.name AS service_name,
			rw.indicator_id, i.name AS indicator_name, i.parent_indicator_id,
			ac.label AS age_label, rw.value_type, rw.value, rw.remarks
		FROM service_data_rows rw
		JOIN report_statuses rs ON rs.id = rw.report_status_id
		JOIN report_submissions sub ON sub.id = rs.submission_id
		JOIN report_submission_templates t ON t.id = sub.template_id
		JOIN services s ON s.id = rw.service_id
		LEFT JOIN indicators i ON i.id = rw.indicator_id
		LEFT JOIN age_categories ac ON ac.id = rw.age_category_id
		WHERE %s
		ORDER BY s.id, rw.indicator_id NULLS FIRST`, clause)

	var rows []domain.ServiceJoinedRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.ServiceDataRows: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) MorbidityRows(ctx context.Context, f domain.ReportPeriodFilter) ([]domain.MorbidityJoinedRow, error) {
	clause, args := periodClause(f)

	query := fmt.Sprintf(`SELECT rw.disease_id, d.name AS disease_name, ac.label AS age_label, rw.male, rw.female
		FROM morbidity_rows rw
		JOIN report_statuses rs ON rs.id = rw.report_status_id
		JOIN report_submissions sub ON sub.id = rs.submission_id
		JOIN report_submission_templates t ON t.id = sub.template_id
		JOIN diseases d ON d.id = rw.disease_id
		JOIN age_categories ac ON ac.id = rw.age_category_id
		WHERE %s
		ORDER BY d.name, ac.label`, clause)

	var rows []domain.MorbidityJoinedRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.MorbidityRows: %w", err)
	}
	return rows, nil
}

// flatClause builds the optional filters for the unfiltered listing
// endpoints, mirroring the dynamic WHERE construction used elsewhere.
func flatClause(f domain.FlatRowFilter) (clause string, args []interface{}) {
	clause = "sub.status IN ('submitted', 'submitted late')"
	argN := 1
	if f.BarangayName != "" {
		clause += fmt.Sprintf(" AND b.name = $%d", argN)
		args = append(args, f.BarangayName)
		argN++
	}
	if f.Year != 0 {
		clause += fmt.Sprintf(" AND t.report_year = $%d", argN)
		args = append(args, f.Year)
	}
	return clause, args
}

func (r *reportRepo) FPFlatRows(ctx context.Context, f domain.FlatRowFilter) ([]domain.FPFlatRow, error) {
	clause, args := flatClause(f)

	query := fmt.Sprintf(`SELECT rw.id, b.name AS barangay_name, t.report_month, t.report_year,
			m.name AS method_name, ac.label AS age_category,
			rw.current_users_beginning_month, rw.new_acceptors_prev_month, rw.other_acceptors_present_month,
			rw.drop_outs_present_month, rw.current_users_end_month, rw.new_acceptors_present_month
		FROM fp_report_rows rw
		JOIN report_statuses rs ON rs.id = rw.report_status_id
		JOIN report_submissions sub ON sub.id = rs.submission_id
		JOIN report_submission_templates t ON t.id = sub.template_id
		JOIN barangays b ON b.id = t.barangay_id
		JOIN fp_methods m ON m.id = rw.fp_method_id
		JOIN age_categories ac ON ac.id = rw.age_category_id
		WHERE %s
		ORDER BY t.report_year, t.report_month, b.name, m.name`, clause)

	var rows []domain.FPFlatRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.FPFlatRows: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) WRAFlatRows(ctx context.Context, f domain.FlatRowFilter) ([]domain.WRAFlatRow, error) {
	clause, args := flatClause(f)

	query := fmt.Sprintf(`SELECT rw.id, b.name AS barangay_name, t.report_month, t.report_year,
			ac.label AS age_category, rw.unmet_need_modern_fp
		FROM wra_rows rw
		JOIN report_statuses rs ON rs.id = rw.report_status_id
		JOIN report_submissions sub ON sub.id = rs.submission_id
		JOIN report_submission_templates t ON t.id = sub.template_id
		JOIN barangays b ON b.id = t.barangay_id
		JOIN age_categories ac ON ac.id = rw.age_category_id
		WHERE %s
		ORDER BY t.report_year, t.report_month, b.name, ac.label`, clause)

	var rows []domain.WRAFlatRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.WRAFlatRows: %w", err)
	}
	return rows, nil
}
