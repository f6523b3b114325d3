package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/guia-local-api/infrastructure/database/postgres"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

//go:generate mockgen -source=offer.go -destination=mocks/offer_mock.go -package=mocks

const offersTable = "offers"

var offerColumns = []string{
	"id", "company_id", "title", "description", "discount", "coupon_code",
	"limit_per_user", "start_date", "valid_until", "image_url", "active", "created_at",
}

// OfferQuery filtra ofertas; CompanyID vazio busca em todas as empresas
type OfferQuery struct {
	CompanyID  string
	OnlyActive bool
}

type OfferRepository interface {
	Create(offer *domain.Offer) error
	GetByID(offerID string) (*domain.Offer, error)
	List(query OfferQuery) ([]*domain.Offer, error)
	Delete(offerID string) error
	DeactivateExpired(now time.Time) (int64, error)
}

type offerRepository struct {
	conn *postgres.Connection
}

func NewOfferRepository(conn *postgres.Connection) OfferRepository {
	return &offerRepository{
		conn: conn,
	}
}

func (r *offerRepository) Create(offer *domain.Offer) error {
	query, args, err := squirrel.
		Insert(offersTable).
		Columns(
			"id", "company_id", "title", "description", "discount", "coupon_code",
			"limit_per_user", "start_date", "valid_until", "image_url", "active",
		).
		Values(
			offer.ID, offer.CompanyID, offer.Title, offer.Description, offer.Discount,
			offer.CouponCode, offer.LimitPerUser, offer.StartDate, offer.ValidUntil,
			offer.ImageURL, offer.Active,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if err := r.conn.QueryRow(query, args...).Scan(&offer.CreatedAt); err != nil {
		return errors.Wrap(err, "erro ao criar oferta")
	}

	return nil
}

func (r *offerRepository) GetByID(offerID string) (*domain.Offer, error) {
	query, args, err := squirrel.
		Select(offerColumns...).
		From(offersTable).
		Where(squirrel.Eq{"id": offerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	offer, err := scanOffer(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar oferta")
	}

	return offer, nil
}

func (r *offerRepository) List(q OfferQuery) ([]*domain.Offer, error) {
	queryBuilder := squirrel.
		Select(offerColumns...).
		From(offersTable).
		OrderBy("valid_until ASC").
		PlaceholderFormat(squirrel.Dollar)

	if q.CompanyID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"company_id": q.CompanyID})
	}

	if q.OnlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar ofertas")
	}
	defer rows.Close()

	offers := make([]*domain.Offer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}

func (r *offerRepository) Delete(offerID string) error {
	query, args, err := squirrel.
		Delete(offersTable).
		Where(squirrel.Eq{"id": offerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao remover oferta")
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeactivateExpired desativa as ofertas com validade anterior a now
func (r *offerRepository) DeactivateExpired(now time.Time) (int64, error) {
	query, args, err := squirrel.
		Update(offersTable).
		Set("active", false).
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.Lt{"valid_until": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao desativar ofertas expiradas")
	}

	return result.RowsAffected()
}

func scanOffer(row rowScanner) (*domain.Offer, error) {
	offer := &domain.Offer{}
	if err := row.Scan(
		&offer.ID,
		&offer.CompanyID,
		&offer.Title,
		&offer.Description,
		&offer.Discount,
		&offer.CouponCode,
		&offer.LimitPerUser,
		&offer.StartDate,
		&offer.ValidUntil,
		&offer.ImageURL,
		&offer.Active,
		&offer.CreatedAt,
	); err != nil {
		return nil, err
	}
	return offer, nil
}
