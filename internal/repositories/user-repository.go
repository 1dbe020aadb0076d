package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const (
	userTable  = "users"
	userFields = "id, name, email, password_hash, role, created_at, updated_at"
)

type UserRepositoryInterface interface {
	FindUserByID(ctx context.Context, id string) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, u *entities.User) error
}

type userRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &userRepository{storage: storage, logger: logger}
}

func (r *userRepository) scanRow(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (*entities.User, error) {
	return r.scanRow(r.storage.QueryRow(ctx, "SELECT "+userFields+" FROM "+userTable+" WHERE id = $1", id))
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.scanRow(r.storage.QueryRow(ctx, "SELECT "+userFields+" FROM "+userTable+" WHERE email = $1", email))
}

func (r *userRepository) CreateUser(ctx context.Context, u *entities.User) error {
	query, args, err := sq.Insert(userTable).
		Columns("id", "name", "email", "password_hash", "role", "created_at", "updated_at").
		Values(u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.Exec(ctx, query, args...)
	return err
}
