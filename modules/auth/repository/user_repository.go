package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mentorhub/core/database"
	"mentorhub/core/logger"
	"mentorhub/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.User, error)
	UpdateAvatarKey(ctx context.Context, id uuid.UUID, key string) error
}

type UserRepository struct {
	db database.IDatabase
}

func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (email, first_name, last_name, role, company, password_hash, google_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = entity.RoleGuest
	}

	row := r.db.QueryRowContext(ctx, query,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Role,
		user.Company,
		user.PasswordHash,
		user.GoogleID,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return row.Scan(&user.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT * FROM users WHERE id = $1`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("UserRepository:GetByID:Error", "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT * FROM users WHERE lower(email) = lower($1)`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("UserRepository:GetByEmail:Error", "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	query := `SELECT * FROM users WHERE google_id = $1`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, googleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("UserRepository:GetByGoogleID:Error", "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT * FROM users WHERE id = ANY($1)`

	idStrings := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrings = append(idStrings, id.String())
	}

	var users []entity.User
	err := r.db.SelectContext(ctx, &users, query, pq.Array(idStrings))
	if err != nil {
		logger.Error("UserRepository:GetByIDs:Error", "error", err, "count", len(ids))
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) UpdateAvatarKey(ctx context.Context, id uuid.UUID, key string) error {
	query := `UPDATE users SET avatar_key = $1, updated_at = $2 WHERE id = $3`
	err := r.db.ExecContext(ctx, query, key, time.Now(), id)
	if err != nil {
		logger.Error("UserRepository:UpdateAvatarKey:Error", "error", err)
		return err
	}
	return nil
}
