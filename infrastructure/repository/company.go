package repository

import (
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/guia-local-api/infrastructure/database/postgres"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

//go:generate mockgen -source=company.go -destination=mocks/company_mock.go -package=mocks

const companiesTable = "companies"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var companyColumns = []string{
	"id", "name", "category", "description", "phone", "email", "website",
	"address", "city", "logo_url", "plan", "token_balance",
	"availability_status", "hours_of_operation", "search_terms",
	"created_at", "updated_at",
}

type CompanyRepository interface {
	GetByID(companyID string) (*domain.Company, error)
	List(filters domain.CompanyFilters) ([]*domain.Company, error)
	Create(company *domain.Company) error
	UpdateProfile(req *domain.UpdateCompanyRequest) error
	UpdateAvailability(companyID string, status domain.AvailabilityStatus) error
	UpdateHours(companyID string, hours []domain.DaySchedule) error
	CreditTokens(companyID string, amount int) (int, error)
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) GetByID(companyID string) (*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns...).
		From(companiesTable).
		Where(squirrel.Eq{"id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	company, err := scanCompany(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar empresa")
	}

	return company, nil
}

func (r *companyRepository) List(filters domain.CompanyFilters) ([]*domain.Company, error) {
	queryBuilder := squirrel.
		Select(companyColumns...).
		From(companiesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Category != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"category": filters.Category})
	}

	if filters.City != "" {
		queryBuilder = queryBuilder.Where(squirrel.ILike{"city": filters.City})
	}

	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + search + "%"
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.Expr("? ILIKE ANY(search_terms)", search),
		})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar empresas")
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

func (r *companyRepository) Create(company *domain.Company) error {
	hours, err := json.Marshal(company.HoursOfOperation)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Insert(companiesTable).
		Columns(
			"id", "name", "category", "description", "phone", "email", "website",
			"address", "city", "logo_url", "plan", "token_balance",
			"availability_status", "hours_of_operation", "search_terms",
		).
		Values(
			company.ID, company.Name, company.Category, company.Description,
			company.Phone, company.Email, company.Website, company.Address,
			company.City, company.LogoURL, company.Plan, company.TokenBalance,
			company.AvailabilityStatus, hours, pq.Array(company.SearchTerms),
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRow(query, args...).Scan(&company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, "erro ao criar empresa")
	}

	return nil
}

func (r *companyRepository) UpdateProfile(req *domain.UpdateCompanyRequest) error {
	queryBuilder := squirrel.
		Update(companiesTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", *req.Name)
	}

	if req.Category != nil {
		queryBuilder = queryBuilder.Set("category", *req.Category)
	}

	if req.Description != nil {
		queryBuilder = queryBuilder.Set("description", *req.Description)
	}

	if req.Phone != nil {
		queryBuilder = queryBuilder.Set("phone", req.Phone)
	}

	if req.Email != nil {
		queryBuilder = queryBuilder.Set("email", req.Email)
	}

	if req.Website != nil {
		queryBuilder = queryBuilder.Set("website", req.Website)
	}

	if req.Address != nil {
		queryBuilder = queryBuilder.Set("address", *req.Address)
	}

	if req.City != nil {
		queryBuilder = queryBuilder.Set("city", *req.City)
	}

	if req.LogoURL != nil {
		queryBuilder = queryBuilder.Set("logo_url", req.LogoURL)
	}

	if req.SearchTerms != nil {
		queryBuilder = queryBuilder.Set("search_terms", pq.Array(req.SearchTerms))
	}

	return r.execUpdate(queryBuilder)
}

func (r *companyRepository) UpdateAvailability(companyID string, status domain.AvailabilityStatus) error {
	return r.execUpdate(squirrel.
		Update(companiesTable).
		Set("availability_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": companyID}).
		PlaceholderFormat(squirrel.Dollar))
}

func (r *companyRepository) UpdateHours(companyID string, hours []domain.DaySchedule) error {
	payload, err := json.Marshal(hours)
	if err != nil {
		return err
	}

	return r.execUpdate(squirrel.
		Update(companiesTable).
		Set("hours_of_operation", payload).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": companyID}).
		PlaceholderFormat(squirrel.Dollar))
}

// CreditTokens soma amount ao saldo e devolve o saldo resultante
func (r *companyRepository) CreditTokens(companyID string, amount int) (int, error) {
	query, args, err := squirrel.
		Update(companiesTable).
		Set("token_balance", squirrel.Expr("token_balance + ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": companyID}).
		Suffix("RETURNING token_balance").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var balance int
	if err := r.conn.QueryRow(query, args...).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, errors.Wrap(err, "erro ao creditar tokens")
	}

	return balance, nil
}

func (r *companyRepository) execUpdate(queryBuilder squirrel.UpdateBuilder) error {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar empresa")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	company := &domain.Company{}
	var hours []byte

	if err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Category,
		&company.Description,
		&company.Phone,
		&company.Email,
		&company.Website,
		&company.Address,
		&company.City,
		&company.LogoURL,
		&company.Plan,
		&company.TokenBalance,
		&company.AvailabilityStatus,
		&hours,
		pq.Array(&company.SearchTerms),
		&company.CreatedAt,
		&company.UpdatedAt,
	); err != nil {
		return nil, err
	}

	// Coluna nula mantém HoursOfOperation nil, que o resolvedor trata como fechado
	if len(hours) > 0 && string(hours) != "null" {
		if err := json.Unmarshal(hours, &company.HoursOfOperation); err != nil {
			return nil, errors.Wrapf(err, "horários inválidos para a empresa %s", company.ID)
		}
	}

	return company, nil
}
