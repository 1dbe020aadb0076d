package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const (
	requestTable  = "maintenance_requests"
	requestFields = "id, subject, equipment_id, team_id, technician_id, type, status, priority, scheduled_date, duration, root_cause, created_by, created_at, updated_at"
)

type RequestRepositoryInterface interface {
	// GetRequests returns all requests newest-first; the most-recent-first
	// ordering is the display convention the board and lists rely on.
	GetRequests(ctx context.Context) ([]*entities.MaintenanceRequest, error)
	GetRequestsByEquipment(ctx context.Context, equipmentID string) ([]*entities.MaintenanceRequest, error)
	GetRequestsFiltered(ctx context.Context, filter entities.ReportFilter) ([]*entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, r *entities.MaintenanceRequest) error
	UpdateRequest(ctx context.Context, r *entities.MaintenanceRequest) error
}

type requestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) RequestRepositoryInterface {
	return &requestRepository{storage: storage, logger: logger}
}

func (r *requestRepository) scanRow(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var m entities.MaintenanceRequest
	err := row.Scan(
		&m.ID, &m.Subject, &m.EquipmentID, &m.TeamID, &m.TechnicianID,
		&m.Type, &m.Status, &m.Priority, &m.ScheduledDate, &m.Duration,
		&m.RootCause, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scanning maintenance_requests row: %w", err)
	}
	return &m, nil
}

func (r *requestRepository) queryList(ctx context.Context, builder sq.SelectBuilder) ([]*entities.MaintenanceRequest, error) {
	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*entities.MaintenanceRequest
	for rows.Next() {
		m, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *requestRepository) GetRequests(ctx context.Context) ([]*entities.MaintenanceRequest, error) {
	return r.queryList(ctx, sq.Select(requestFields).
		From(requestTable).
		OrderBy("created_at DESC"))
}

func (r *requestRepository) GetRequestsByEquipment(ctx context.Context, equipmentID string) ([]*entities.MaintenanceRequest, error) {
	return r.queryList(ctx, sq.Select(requestFields).
		From(requestTable).
		Where(sq.Eq{"equipment_id": equipmentID}).
		OrderBy("created_at DESC"))
}

func (r *requestRepository) GetRequestsFiltered(ctx context.Context, filter entities.ReportFilter) ([]*entities.MaintenanceRequest, error) {
	builder := sq.Select(requestFields).From(requestTable).OrderBy("created_at DESC")

	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"scheduled_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"scheduled_date": *filter.DateTo})
	}
	if len(filter.Statuses) > 0 {
		builder = builder.Where(sq.Eq{"status": filter.Statuses})
	}
	if len(filter.Types) > 0 {
		builder = builder.Where(sq.Eq{"type": filter.Types})
	}
	if filter.EquipmentID != "" {
		builder = builder.Where(sq.Eq{"equipment_id": filter.EquipmentID})
	}
	return r.queryList(ctx, builder)
}

func (r *requestRepository) FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	query, args, err := sq.Select(requestFields).
		From(requestTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

func (r *requestRepository) CreateRequest(ctx context.Context, m *entities.MaintenanceRequest) error {
	query, args, err := sq.Insert(requestTable).
		Columns("id", "subject", "equipment_id", "team_id", "technician_id",
			"type", "status", "priority", "scheduled_date", "duration",
			"root_cause", "created_by", "created_at", "updated_at").
		Values(m.ID, m.Subject, m.EquipmentID, m.TeamID, m.TechnicianID,
			m.Type, m.Status, m.Priority, m.ScheduledDate, m.Duration,
			m.RootCause, m.CreatedBy, m.CreatedAt, m.UpdatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.Exec(ctx, query, args...)
	return err
}

func (r *requestRepository) UpdateRequest(ctx context.Context, m *entities.MaintenanceRequest) error {
	query, args, err := sq.Update(requestTable).
		Set("status", m.Status).
		Set("root_cause", m.RootCause).
		Set("duration", m.Duration).
		Set("updated_at", m.UpdatedAt).
		Where(sq.Eq{"id": m.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
