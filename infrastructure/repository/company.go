// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/shift-scheduler-api/infrastructure/database/postgres"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
)

const companiesTable = "companies"

//go:generate mockgen -source=company.go -destination=mocks/company_mock.go -package=mocks
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
}

type companyRepository struct {
	conn postgres.Queryer
}

func NewCompanyRepository(conn postgres.Queryer) CompanyRepository {
	return &companyRepository{conn: conn}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	query, args, err := squirrel.
		Insert(companiesTable).
		Columns("id", "name").
		Values(company.ID, company.Name).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return postgres.TranslateError(err, "erro ao construir a query")
	}

	err = r.conn.QueryRow(ctx, query, args...).Scan(&company.CreatedAt, &company.UpdatedAt)
	return postgres.TranslateError(err, "erro ao criar empresa")
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	query, args, err := squirrel.
		Select("id", "name", "created_at", "updated_at").
		From(companiesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao construir a query")
	}

	var company domain.Company
	err = r.conn.QueryRow(ctx, query, args...).Scan(&company.ID, &company.Name, &company.CreatedAt, &company.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao buscar empresa")
	}

	return &company, nil
}

func (r *companyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	query, args, err := squirrel.
		Select("id", "name", "created_at", "updated_at").
		From(companiesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.TranslateError(err, "erro ao listar empresas")
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(&company.ID, &company.Name, &company.CreatedAt, &company.UpdatedAt); err != nil {
			return nil, postgres.TranslateError(err, "erro ao escanear empresa")
		}
		companies = append(companies, &company)
	}

	if err := rows.Err(); err != nil {
		return nil, postgres.TranslateError(err, "erro durante a iteração de linhas")
	}

	return companies, nil
}
