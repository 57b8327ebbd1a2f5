package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/database/postgres"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
)

const dailySalesTable = "daily_sales"

//go:generate mockgen -source=daily_sales.go -destination=mocks/daily_sales_mock.go -package=mocks
type DailySalesRepository interface {
	Upsert(ctx context.Context, sales *domain.DailySales) error
	ListByRange(ctx context.Context, companyID, startDate, endDate string) ([]*domain.DailySales, error)
}

type dailySalesRepository struct {
	conn postgres.Queryer
}

func NewDailySalesRepository(conn postgres.Queryer) DailySalesRepository {
	return &dailySalesRepository{conn: conn}
}

func (r *dailySalesRepository) Upsert(ctx context.Context, sales *domain.DailySales) error {
	query, args, err := squirrel.
		Insert(dailySalesTable).
		Columns("company_id", "date", "estimated_sales", "hourly_employee_cost").
		Values(sales.CompanyID, sales.Date, sales.EstimatedSales, sales.HourlyEmployeeCost).
		Suffix(`
			ON CONFLICT (company_id, date) DO UPDATE SET
				estimated_sales = EXCLUDED.estimated_sales,
				hourly_employee_cost = EXCLUDED.hourly_employee_cost,
				updated_at = NOW()
			RETURNING created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return postgres.TranslateError(err, "erro ao construir a query")
	}

	err = r.conn.QueryRow(ctx, query, args...).Scan(&sales.CreatedAt, &sales.UpdatedAt)
	return postgres.TranslateError(err, "erro ao salvar vendas do dia")
}

func (r *dailySalesRepository) ListByRange(ctx context.Context, companyID, startDate, endDate string) ([]*domain.DailySales, error) {
	query, args, err := squirrel.
		Select(
			"company_id",
			"to_char(date, 'YYYY-MM-DD')",
			"estimated_sales",
			"hourly_employee_cost",
			"created_at",
			"updated_at",
		).
		From(dailySalesTable).
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.GtOrEq{"date": startDate}).
		Where(squirrel.LtOrEq{"date": endDate}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao listar vendas")
	}
	defer rows.Close()

	result := make([]*domain.DailySales, 0)
	for rows.Next() {
		var sales domain.DailySales
		if err := rows.Scan(
			&sales.CompanyID,
			&sales.Date,
			&sales.EstimatedSales,
			&sales.HourlyEmployeeCost,
			&sales.CreatedAt,
			&sales.UpdatedAt,
		); err != nil {
			return nil, postgres.TranslateError(err, "erro ao escanear vendas")
		}
		result = append(result, &sales)
	}

	if err := rows.Err(); err != nil {
		return nil, postgres.TranslateError(err, "erro durante a iteração de linhas")
	}

	return result, nil
}
