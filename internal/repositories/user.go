package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-media-channels/internal/models"
)

const userColumns = `id, name, email, password_hash, phone, gender, about, user_image,
	channel_name, channel_description, channel_media_links, user_role, created_at, updated_at`

// UserRepository joins the read and write sides for consumers that need both.
type UserRepository struct {
	*UserReadRepository
	*UserWriteRepository
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{
		UserReadRepository:  NewUserReadRepository(db),
		UserWriteRepository: NewUserWriteRepository(db),
	}
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns nil without error when no user has the email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.getOne(ctx, query, email)
}

// GetByID returns nil without error when the user does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, query, args...)
	logQuery(query, args, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserReadRepository) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_role = $1 ORDER BY id`

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query, role)
	logQuery(query, []any{role}, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// Dashboard counts app users, active categories, all media and pending media
// in one round trip.
func (r *UserReadRepository) Dashboard(ctx context.Context) (*models.DashboardCounts, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users WHERE user_role = $1) AS app_users,
			(SELECT COUNT(*) FROM categories WHERE category_status = $2) AS active_categories,
			(SELECT COUNT(*) FROM media) AS media,
			(SELECT COUNT(*) FROM media WHERE media_status = $3) AS pending_media
	`
	args := []any{models.RoleAppUser, models.CategoryActive, models.MediaPending}

	var counts models.DashboardCounts
	err := r.db.GetContext(ctx, &counts, query, args...)
	logQuery(query, args, counts, err)

	if err != nil {
		return nil, err
	}
	return &counts, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts user, whose PasswordHash must already be hashed, and returns
// the stored row.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, phone, user_role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + userColumns

	role := user.Role
	if role == "" {
		role = models.RoleAppUser
	}
	args := []any{user.Name, user.Email, user.PasswordHash, user.Phone, role}

	var created models.User
	err := r.db.GetContext(ctx, &created, query, args...)
	logQuery(query, []any{user.Name, user.Email, "***", user.Phone, role}, created.ID, err)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProfile applies the non-nil fields of upd. It returns nil without error
// when the user does not exist.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, id int64, upd models.ProfileUpdate) (*models.User, error) {
	query := `
		UPDATE users SET
			name = COALESCE($2, name),
			phone = COALESCE($3, phone),
			gender = COALESCE($4, gender),
			about = COALESCE($5, about),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	args := []any{id, upd.Name, upd.Phone, upd.Gender, upd.About}

	return r.updateOne(ctx, query, args)
}

// UpdateChannel overwrites the channel metadata.
func (r *UserWriteRepository) UpdateChannel(ctx context.Context, id int64, ch models.Channel) (*models.User, error) {
	query := `
		UPDATE users SET
			channel_name = $2,
			channel_description = $3,
			channel_media_links = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	args := []any{id, ch.Name, ch.Description, ch.MediaLinks}

	return r.updateOne(ctx, query, args)
}

func (r *UserWriteRepository) updateOne(ctx context.Context, query string, args []any) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, query, args...)
	logQuery(query, args, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
