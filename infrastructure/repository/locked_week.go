package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/database/postgres"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
)

const lockedWeeksTable = "locked_weeks"

//go:generate mockgen -source=locked_week.go -destination=mocks/locked_week_mock.go -package=mocks
type LockedWeekRepository interface {
	Lock(ctx context.Context, week *domain.LockedWeek) error
	Unlock(ctx context.Context, companyID, weekStartDate string) error
	IsLocked(ctx context.Context, companyID, weekStartDate string) (bool, error)
	List(ctx context.Context, companyID string) ([]*domain.LockedWeek, error)
}

type lockedWeekRepository struct {
	conn postgres.Queryer
}

func NewLockedWeekRepository(conn postgres.Queryer) LockedWeekRepository {
	return &lockedWeekRepository{conn: conn}
}

// Lock é idempotente: bloquear uma semana já bloqueada não altera o registro.
func (r *lockedWeekRepository) Lock(ctx context.Context, week *domain.LockedWeek) error {
	query, args, err := squirrel.
		Insert(lockedWeeksTable).
		Columns("company_id", "week_start_date", "locked_by").
		Values(week.CompanyID, week.WeekStartDate, week.LockedBy).
		Suffix("ON CONFLICT (company_id, week_start_date) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return postgres.TranslateError(err, "erro ao construir a query")
	}

	_, err = r.conn.Exec(ctx, query, args...)
	return postgres.TranslateError(err, "erro ao bloquear semana")
}

func (r *lockedWeekRepository) Unlock(ctx context.Context, companyID, weekStartDate string) error {
	query, args, err := squirrel.
		Delete(lockedWeeksTable).
		Where(squirrel.Eq{"company_id": companyID, "week_start_date": weekStartDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return postgres.TranslateError(err, "erro ao construir a query")
	}

	return execAffecting(ctx, r.conn, query, args, "erro ao desbloquear semana")
}

func (r *lockedWeekRepository) IsLocked(ctx context.Context, companyID, weekStartDate string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		Prefix("SELECT EXISTS (").
		From(lockedWeeksTable).
		Where(squirrel.Eq{"company_id": companyID, "week_start_date": weekStartDate}).
		Suffix(")").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, postgres.TranslateError(err, "erro ao construir a query")
	}

	var locked bool
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&locked); err != nil {
		return false, postgres.TranslateError(err, "erro ao consultar bloqueio da semana")
	}

	return locked, nil
}

func (r *lockedWeekRepository) List(ctx context.Context, companyID string) ([]*domain.LockedWeek, error) {
	query, args, err := squirrel.
		Select("company_id", "to_char(week_start_date, 'YYYY-MM-DD')", "locked_by", "created_at").
		From(lockedWeeksTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("week_start_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao listar semanas bloqueadas")
	}
	defer rows.Close()

	weeks := make([]*domain.LockedWeek, 0)
	for rows.Next() {
		var week domain.LockedWeek
		if err := rows.Scan(&week.CompanyID, &week.WeekStartDate, &week.LockedBy, &week.CreatedAt); err != nil {
			return nil, postgres.TranslateError(err, "erro ao escanear semana bloqueada")
		}
		weeks = append(weeks, &week)
	}

	if err := rows.Err(); err != nil {
		return nil, postgres.TranslateError(err, "erro durante a iteração de linhas")
	}

	return weeks, nil
}
