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

const (
	teamTable        = "teams"
	teamMembersTable = "team_members"
)

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]*entities.Team, error)
	FindTeam(ctx context.Context, id string) (*entities.Team, error)
}

type teamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &teamRepository{storage: storage}
}

func (r *teamRepository) GetTeams(ctx context.Context) ([]*entities.Team, error) {
	query, args, err := sq.Select("id", "name").
		From(teamTable).
		OrderBy("name ASC").
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

	byID := make(map[string]*entities.Team)
	var list []*entities.Team
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		t.Members = []string{}
		byID[t.ID] = &t
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	memberRows, err := r.storage.Query(ctx, "SELECT team_id, technician_id FROM "+teamMembersTable)
	if err != nil {
		return nil, err
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var teamID, technicianID string
		if err := memberRows.Scan(&teamID, &technicianID); err != nil {
			return nil, err
		}
		if t, ok := byID[teamID]; ok {
			t.Members = append(t.Members, technicianID)
		}
	}
	return list, memberRows.Err()
}

func (r *teamRepository) FindTeam(ctx context.Context, id string) (*entities.Team, error) {
	var t entities.Team
	err := r.storage.QueryRow(ctx, "SELECT id, name FROM "+teamTable+" WHERE id = $1", id).
		Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	t.Members = []string{}
	rows, err := r.storage.Query(ctx, "SELECT technician_id FROM "+teamMembersTable+" WHERE team_id = $1", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var technicianID string
		if err := rows.Scan(&technicianID); err != nil {
			return nil, err
		}
		t.Members = append(t.Members, technicianID)
	}
	return &t, rows.Err()
}
