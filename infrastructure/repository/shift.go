package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/database/postgres"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
)

const shiftsTable = "shifts"

var shiftColumns = []string{
	"s.id",
	"s.employee_id",
	"e.company_id",
	"to_char(s.date, 'YYYY-MM-DD')",
	"s.start_time",
	"s.end_time",
	"s.notes",
	"s.created_at",
	"s.updated_at",
}

//go:generate mockgen -source=shift.go -destination=mocks/shift_mock.go -package=mocks
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	Update(ctx context.Context, shift *domain.Shift) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Shift, error)
	List(ctx context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error)
}

type shiftRepository struct {
	conn postgres.Queryer
}

func NewShiftRepository(conn postgres.Queryer) ShiftRepository {
	return &shiftRepository{conn: conn}
}

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	query, args, err := squirrel.
		Insert(shiftsTable).
		Columns("id", "employee_id", "date", "start_time", "end_time", "notes").
		Values(shift.ID, shift.EmployeeID, shift.Date, shift.StartTime, shift.EndTime, shift.Notes).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return postgres.TranslateError(err, "erro ao construir a query")
	}

	err = r.conn.QueryRow(ctx, query, args...).Scan(&shift.CreatedAt, &shift.UpdatedAt)
	return postgres.TranslateError(err, "erro ao criar turno")
}

func (r *shiftRepository) Update(ctx context.Context, shift *domain.Shift) error {
	query, args, err := squirrel.
		Update(shiftsTable).
		Set("date", shift.Date).
		Set("start_time", shift.StartTime).
		Set("end_time", shift.EndTime).
		Set("notes", shift.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": shift.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return postgres.TranslateError(err, "erro ao construir a query")
	}

	return execAffecting(ctx, r.conn, query, args, "erro ao atualizar turno")
}

func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(shiftsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return postgres.TranslateError(err, "erro ao construir a query")
	}

	return execAffecting(ctx, r.conn, query, args, "erro ao remover turno")
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	query, args, err := selectShifts().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao construir a query")
	}

	shift, err := scanShift(r.conn.QueryRow(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao buscar turno")
	}

	return shift, nil
}

// List filtra por empresa, funcionário e intervalo de datas (inclusivo).
// Filtros vazios são ignorados.
func (r *shiftRepository) List(ctx context.Context, filter domain.ShiftFilter) ([]*domain.Shift, error) {
	builder := selectShifts().OrderBy("s.date ASC", "s.start_time ASC", "e.name ASC")

	if filter.CompanyID != "" {
		builder = builder.Where(squirrel.Eq{"e.company_id": filter.CompanyID})
	}
	if filter.EmployeeID != "" {
		builder = builder.Where(squirrel.Eq{"s.employee_id": filter.EmployeeID})
	}
	if filter.StartDate != "" {
		builder = builder.Where(squirrel.GtOrEq{"s.date": filter.StartDate})
	}
	if filter.EndDate != "" {
		builder = builder.Where(squirrel.LtOrEq{"s.date": filter.EndDate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao listar turnos")
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, postgres.TranslateError(err, "erro ao escanear turno")
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, postgres.TranslateError(err, "erro durante a iteração de linhas")
	}

	return shifts, nil
}

func selectShifts() squirrel.SelectBuilder {
	return squirrel.
		Select(shiftColumns...).
		From(shiftsTable + " s").
		Join(employeesTable + " e ON e.id = s.employee_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanShift(row rowScanner) (*domain.Shift, error) {
	var shift domain.Shift
	err := row.Scan(
		&shift.ID,
		&shift.EmployeeID,
		&shift.CompanyID,
		&shift.Date,
		&shift.StartTime,
		&shift.EndTime,
		&shift.Notes,
		&shift.CreatedAt,
		&shift.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shift, nil
}
