package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/guia-local-api/infrastructure/database/postgres"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

//go:generate mockgen -source=event.go -destination=mocks/event_mock.go -package=mocks

const eventsTable = "events"

var eventColumns = []string{
	"id", "company_id", "title", "description", "date", "location", "image_url", "active", "created_at",
}

type EventQuery struct {
	CompanyID  string
	OnlyActive bool
}

type EventRepository interface {
	Create(event *domain.Event) error
	GetByID(eventID string) (*domain.Event, error)
	List(query EventQuery) ([]*domain.Event, error)
	Delete(eventID string) error
	DeactivateExpired(now time.Time) (int64, error)
}

type eventRepository struct {
	conn *postgres.Connection
}

func NewEventRepository(conn *postgres.Connection) EventRepository {
	return &eventRepository{
		conn: conn,
	}
}

func (r *eventRepository) Create(event *domain.Event) error {
	query, args, err := squirrel.
		Insert(eventsTable).
		Columns("id", "company_id", "title", "description", "date", "location", "image_url", "active").
		Values(event.ID, event.CompanyID, event.Title, event.Description, event.Date, event.Location, event.ImageURL, event.Active).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if err := r.conn.QueryRow(query, args...).Scan(&event.CreatedAt); err != nil {
		return errors.Wrap(err, "erro ao criar evento")
	}

	return nil
}

func (r *eventRepository) GetByID(eventID string) (*domain.Event, error) {
	query, args, err := squirrel.
		Select(eventColumns...).
		From(eventsTable).
		Where(squirrel.Eq{"id": eventID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	event, err := scanEvent(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar evento")
	}

	return event, nil
}

func (r *eventRepository) List(q EventQuery) ([]*domain.Event, error) {
	queryBuilder := squirrel.
		Select(eventColumns...).
		From(eventsTable).
		OrderBy("date ASC").
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
		return nil, errors.Wrap(err, "erro ao listar eventos")
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) Delete(eventID string) error {
	query, args, err := squirrel.
		Delete(eventsTable).
		Where(squirrel.Eq{"id": eventID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao remover evento")
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *eventRepository) DeactivateExpired(now time.Time) (int64, error) {
	query, args, err := squirrel.
		Update(eventsTable).
		Set("active", false).
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.Lt{"date": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao desativar eventos passados")
	}

	return result.RowsAffected()
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	event := &domain.Event{}
	if err := row.Scan(
		&event.ID,
		&event.CompanyID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Location,
		&event.ImageURL,
		&event.Active,
		&event.CreatedAt,
	); err != nil {
		return nil, err
	}
	return event, nil
}
