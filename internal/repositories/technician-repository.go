package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const technicianTable = "technicians"

type TechnicianRepositoryInterface interface {
	GetTechnicians(ctx context.Context) ([]*entities.Technician, error)
	FindTechnician(ctx context.Context, id string) (*entities.Technician, error)
}

type technicianRepository struct {
	storage *pgxpool.Pool
}

func NewTechnicianRepository(storage *pgxpool.Pool) TechnicianRepositoryInterface {
	return &technicianRepository{storage: storage}
}

func (r *technicianRepository) GetTechnicians(ctx context.Context) ([]*entities.Technician, error) {
	query, args, err := sq.Select("id", "name", "workload").
		From(technicianTable).
		OrderBy("workload ASC", "name ASC").
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

	var list []*entities.Technician
	for rows.Next() {
		var t entities.Technician
		if err := rows.Scan(&t.ID, &t.Name, &t.Workload); err != nil {
			return nil, err
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *technicianRepository) FindTechnician(ctx context.Context, id string) (*entities.Technician, error) {
	var t entities.Technician
	err := r.storage.QueryRow(ctx, "SELECT id, name, workload FROM "+technicianTable+" WHERE id = $1", id).
		Scan(&t.ID, &t.Name, &t.Workload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
