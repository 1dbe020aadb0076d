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
	equipmentTable  = "equipments"
	equipmentFields = "id, name, serial_number, location, department, assigned_employee, maintenance_team_id, default_technician_id, is_scrapped, maintenance_frequency, image_url, image_hint, created_at, updated_at"
)

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) ([]*entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, e *entities.Equipment) error
}

type equipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage, logger: logger}
}

func (r *equipmentRepository) scanRow(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Location, &e.Department,
		&e.AssignedEmployee, &e.MaintenanceTeamID, &e.DefaultTechnicianID,
		&e.IsScrapped, &e.MaintenanceFrequency, &e.ImageURL, &e.ImageHint,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scanning equipments row: %w", err)
	}
	return &e, nil
}

func (r *equipmentRepository) GetEquipments(ctx context.Context) ([]*entities.Equipment, error) {
	query, args, err := sq.Select(equipmentFields).
		From(equipmentTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*entities.Equipment
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *equipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	query, args, err := sq.Select(equipmentFields).
		From(equipmentTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

func (r *equipmentRepository) CreateEquipment(ctx context.Context, e *entities.Equipment) error {
	query, args, err := sq.Insert(equipmentTable).
		Columns("id", "name", "serial_number", "location", "department",
			"assigned_employee", "maintenance_team_id", "default_technician_id",
			"is_scrapped", "maintenance_frequency", "image_url", "image_hint",
			"created_at", "updated_at").
		Values(e.ID, e.Name, e.SerialNumber, e.Location, e.Department,
			e.AssignedEmployee, e.MaintenanceTeamID, e.DefaultTechnicianID,
			e.IsScrapped, e.MaintenanceFrequency, e.ImageURL, e.ImageHint,
			e.CreatedAt, e.UpdatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.Exec(ctx, query, args...)
	return err
}
