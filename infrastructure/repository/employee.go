package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/database/postgres"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
)

const employeesTable = "employees"

var employeeColumns = []string{
	"id", "company_id", "name", "role", "max_hours_per_week", "active", "created_at", "updated_at",
}

//go:generate mockgen -source=employee.go -destination=mocks/employee_mock.go -package=mocks
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	ListByCompany(ctx context.Context, companyID string, onlyActive bool) ([]*domain.Employee, error)
}

type employeeRepository struct {
	conn postgres.Queryer
}

func NewEmployeeRepository(conn postgres.Queryer) EmployeeRepository {
	return &employeeRepository{conn: conn}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	query, args, err := squirrel.
		Insert(employeesTable).
		Columns("id", "company_id", "name", "role", "max_hours_per_week", "active").
		Values(employee.ID, employee.CompanyID, employee.Name, employee.Role, employee.MaxHoursPerWeek, employee.Active).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return postgres.TranslateError(err, "erro ao construir a query")
	}

	err = r.conn.QueryRow(ctx, query, args...).Scan(&employee.CreatedAt, &employee.UpdatedAt)
	return postgres.TranslateError(err, "erro ao criar funcionário")
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	query, args, err := squirrel.
		Update(employeesTable).
		Set("name", employee.Name).
		Set("role", employee.Role).
		Set("max_hours_per_week", employee.MaxHoursPerWeek).
		Set("active", employee.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": employee.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return postgres.TranslateError(err, "erro ao construir a query")
	}

	return execAffecting(ctx, r.conn, query, args, "erro ao atualizar funcionário")
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(employeesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return postgres.TranslateError(err, "erro ao construir a query")
	}

	return execAffecting(ctx, r.conn, query, args, "erro ao remover funcionário")
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query, args, err := squirrel.
		Select(employeeColumns...).
		From(employeesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao construir a query")
	}

	employee, err := scanEmployee(r.conn.QueryRow(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao buscar funcionário")
	}

	return employee, nil
}

func (r *employeeRepository) ListByCompany(ctx context.Context, companyID string, onlyActive bool) ([]*domain.Employee, error) {
	builder := squirrel.
		Select(employeeColumns...).
		From(employeesTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao listar funcionários")
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, postgres.TranslateError(err, "erro ao escanear funcionário")
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, postgres.TranslateError(err, "erro durante a iteração de linhas")
	}

	return employees, nil
}

func execAffecting(ctx context.Context, conn postgres.Queryer, query string, args []interface{}, message string) error {
	result, err := conn.Exec(ctx, query, args...)
	if err != nil {
		return postgres.TranslateError(err, message)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return postgres.TranslateError(err, "erro ao obter número de linhas afetadas")
	}
	if affected == 0 {
		return postgres.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var employee domain.Employee
	err := row.Scan(
		&employee.ID,
		&employee.CompanyID,
		&employee.Name,
		&employee.Role,
		&employee.MaxHoursPerWeek,
		&employee.Active,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}
