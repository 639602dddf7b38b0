package repositories

import (
	"context"
	"errors"

	"fleet-system/internal/entities"
	apperrors "fleet-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userTable = "users"
const userFields = "id, email, password_hash, nombre_completo, rol, created_at, updated_at"

type UserRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func scanUser(row pgx.Row, u *entities.User) error {
	return row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.NombreCompleto, &u.Rol, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := "SELECT " + userFields + " FROM " + userTable + " WHERE email = $1"

	var user entities.User
	if err := scanUser(r.storage.QueryRow(ctx, query, email), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := "SELECT " + userFields + " FROM " + userTable + " WHERE id = $1"

	var user entities.User
	if err := scanUser(r.storage.QueryRow(ctx, query, id), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
