package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/guia-local-api/infrastructure/database/postgres"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

//go:generate mockgen -source=sponsorship.go -destination=mocks/sponsorship_mock.go -package=mocks

const sponsorshipsTable = "sponsorships s"

var (
	// ErrBalanceConflict indica que o saldo mudou entre a validação e o débito
	ErrBalanceConflict = errors.New("saldo de tokens insuficiente no momento do débito")
	// ErrSlotConflict indica que algum dia da campanha lotou antes da gravação
	ErrSlotConflict = errors.New("slot de destaque ocupado no momento da gravação")
)

var sponsorshipColumns = []string{
	"s.id", "s.company_id", "c.name", "s.placement", "s.campaign_name",
	"s.destination_link", "s.asset_url", "s.tokens_spent", "s.daily_cost", "s.days",
	"s.start_date", "s.end_date", "s.status", "s.coupon_code", "s.coupon_limit_per_user",
	"s.coupon_start_date", "s.coupon_end_date", "s.created_at", "s.updated_at",
}

type SponsorshipRepository interface {
	CreateWithDebit(ctx context.Context, sponsorship *domain.Sponsorship) error
	GetByID(sponsorshipID string) (*domain.Sponsorship, error)
	ListByCompany(companyID string) ([]*domain.Sponsorship, error)
	ListByStatus(status domain.SponsorshipStatus) ([]*domain.Sponsorship, error)
	ListActiveOn(placement domain.PlacementType, date time.Time) ([]*domain.Sponsorship, error)
	CountOccupied(ctx context.Context, placement domain.PlacementType, date time.Time) (int, error)
	UpdateStatus(sponsorshipID string, from, to domain.SponsorshipStatus) (bool, error)
}

type sponsorshipRepository struct {
	conn *postgres.Connection
}

func NewSponsorshipRepository(conn *postgres.Connection) SponsorshipRepository {
	return &sponsorshipRepository{
		conn: conn,
	}
}

// CreateWithDebit grava o pedido e debita os tokens da empresa na mesma transação
func (r *sponsorshipRepository) CreateWithDebit(ctx context.Context, s *domain.Sponsorship) error {
	debitSQL, debitArgs, err := squirrel.
		Update(companiesTable).
		Set("token_balance", squirrel.Expr("token_balance - ?", s.TokensSpent)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.CompanyID}).
		Where(squirrel.GtOrEq{"token_balance": s.TokensSpent}).
		Suffix("RETURNING token_balance").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	insertBuilder := squirrel.
		Insert("sponsorships").
		Columns(
			"id", "company_id", "placement", "campaign_name", "destination_link", "asset_url",
			"tokens_spent", "daily_cost", "days", "start_date", "end_date", "status",
			"coupon_code", "coupon_limit_per_user", "coupon_start_date", "coupon_end_date",
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	var couponCode, couponLimit, couponStart, couponEnd any
	if s.Coupon != nil {
		couponCode = s.Coupon.Code
		couponLimit = s.Coupon.LimitPerUser
		couponStart = s.Coupon.StartDate
		couponEnd = s.Coupon.EndDate
	}

	insertSQL, insertArgs, err := insertBuilder.
		Values(
			s.ID, s.CompanyID, s.Placement, s.CampaignName, s.DestinationLink, s.AssetURL,
			s.TokensSpent, s.DailyCost, s.Days, s.StartDate.Format(time.DateOnly), s.EndDate.Format(time.DateOnly), s.Status,
			couponCode, couponLimit, couponStart, couponEnd,
		).
		ToSql()
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		// Serializa as gravações do mesmo tipo de destaque até o commit
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", string(s.Placement)); err != nil {
			return errors.Wrap(err, "erro ao bloquear inventário de slots")
		}

		if err := ensureSlotsFree(ctx, tx, s); err != nil {
			return err
		}

		var balance int
		if err := tx.QueryRowContext(ctx, debitSQL, debitArgs...).Scan(&balance); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBalanceConflict
			}
			return errors.Wrap(err, "erro ao debitar tokens")
		}

		if err := tx.QueryRowContext(ctx, insertSQL, insertArgs...).Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) {
				return errors.Wrapf(pqErr, "erro ao gravar patrocínio (code: %s)", pqErr.Code)
			}
			return errors.Wrap(err, "erro ao gravar patrocínio")
		}

		return nil
	})
}

func (r *sponsorshipRepository) GetByID(sponsorshipID string) (*domain.Sponsorship, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"s.id": sponsorshipID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	sponsorship, err := scanSponsorship(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar patrocínio")
	}

	return sponsorship, nil
}

func (r *sponsorshipRepository) ListByCompany(companyID string) ([]*domain.Sponsorship, error) {
	return r.list(r.selectBuilder().
		Where(squirrel.Eq{"s.company_id": companyID}).
		OrderBy("s.created_at DESC"))
}

// ListByStatus lista os pedidos com o status informado; status vazio lista todos
func (r *sponsorshipRepository) ListByStatus(status domain.SponsorshipStatus) ([]*domain.Sponsorship, error) {
	queryBuilder := r.selectBuilder().OrderBy("s.created_at ASC")
	if status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.status": status})
	}
	return r.list(queryBuilder)
}

// ListActiveOn lista os patrocínios do tipo informado cuja vigência cobre date
func (r *sponsorshipRepository) ListActiveOn(placement domain.PlacementType, date time.Time) ([]*domain.Sponsorship, error) {
	day := date.Format(time.DateOnly)
	return r.list(r.selectBuilder().
		Where(squirrel.Eq{"s.placement": placement}).
		Where(squirrel.LtOrEq{"s.start_date": day}).
		Where(squirrel.Gt{"s.end_date": day}).
		OrderBy("s.created_at ASC"))
}

// CountOccupied conta os slots ocupados do tipo informado na data
func (r *sponsorshipRepository) CountOccupied(ctx context.Context, placement domain.PlacementType, date time.Time) (int, error) {
	return countOccupied(ctx, r.conn, placement, date)
}

type rowQueryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func countOccupied(ctx context.Context, q rowQueryer, placement domain.PlacementType, date time.Time) (int, error) {
	day := date.Format(time.DateOnly)
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(sponsorshipsTable).
		Where(squirrel.Eq{"s.placement": placement}).
		Where(squirrel.LtOrEq{"s.start_date": day}).
		Where(squirrel.Gt{"s.end_date": day}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "erro ao contar slots ocupados")
	}

	return count, nil
}

// ensureSlotsFree reconta, dentro da transação, cada dia da campanha
func ensureSlotsFree(ctx context.Context, tx *sql.Tx, s *domain.Sponsorship) error {
	placementCfg, ok := domain.LookupPlacement(s.Placement)
	if !ok {
		return errors.Errorf("tipo de destaque desconhecido: %s", s.Placement)
	}

	for day := 0; day < s.Days; day++ {
		occupied, err := countOccupied(ctx, tx, s.Placement, s.StartDate.AddDate(0, 0, day))
		if err != nil {
			return err
		}

		if occupied >= placementCfg.SlotCapacity {
			return ErrSlotConflict
		}
	}

	return nil
}

// UpdateStatus só altera o pedido se ele ainda estiver no status from
func (r *sponsorshipRepository) UpdateStatus(sponsorshipID string, from, to domain.SponsorshipStatus) (bool, error) {
	query, args, err := squirrel.
		Update("sponsorships").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sponsorshipID, "status": from}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, errors.Wrap(err, "erro ao atualizar status do patrocínio")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *sponsorshipRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(sponsorshipColumns...).
		From(sponsorshipsTable).
		Join("companies c ON c.id = s.company_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *sponsorshipRepository) list(queryBuilder squirrel.SelectBuilder) ([]*domain.Sponsorship, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar patrocínios")
	}
	defer rows.Close()

	sponsorships := make([]*domain.Sponsorship, 0)
	for rows.Next() {
		sponsorship, err := scanSponsorship(rows)
		if err != nil {
			return nil, err
		}
		sponsorships = append(sponsorships, sponsorship)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sponsorships, nil
}

func scanSponsorship(row rowScanner) (*domain.Sponsorship, error) {
	s := &domain.Sponsorship{}
	var (
		couponCode  sql.NullString
		couponLimit sql.NullInt64
		couponStart sql.NullTime
		couponEnd   sql.NullTime
	)

	if err := row.Scan(
		&s.ID,
		&s.CompanyID,
		&s.CompanyName,
		&s.Placement,
		&s.CampaignName,
		&s.DestinationLink,
		&s.AssetURL,
		&s.TokensSpent,
		&s.DailyCost,
		&s.Days,
		&s.StartDate,
		&s.EndDate,
		&s.Status,
		&couponCode,
		&couponLimit,
		&couponStart,
		&couponEnd,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if couponCode.Valid {
		s.Coupon = &domain.CouponTerms{
			Code:         couponCode.String,
			LimitPerUser: int(couponLimit.Int64),
			StartDate:    couponStart.Time,
			EndDate:      couponEnd.Time,
		}
	}

	return s, nil
}
