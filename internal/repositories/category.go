package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-media-channels/internal/models"
)

const categoryColumns = `category_id, category_name, category_image, category_status, created_at, updated_at`

// CategoryRepository stores categories. Categories are never physically removed.
type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	query := `
		INSERT INTO categories (category_name, category_image, category_status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + categoryColumns
	args := []any{c.Name, c.Image, c.Status}

	var created models.Category
	err := r.db.GetContext(ctx, &created, query, args...)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID returns nil without error when the category does not exist.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1`

	var c models.Category
	err := r.db.GetContext(ctx, &c, query, id)
	logQuery(query, []any{id}, c.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns active categories, or every category when includeAll is set.
func (r *CategoryRepository) List(ctx context.Context, includeAll bool) ([]models.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE ($1 OR category_status = $2)
		ORDER BY category_id
	`
	args := []any{includeAll, models.CategoryActive}

	categories := []models.Category{}
	err := r.db.SelectContext(ctx, &categories, query, args...)
	logQuery(query, args, len(categories), err)

	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Update applies the non-nil fields of upd. It returns nil without error when
// the category does not exist.
func (r *CategoryRepository) Update(ctx context.Context, id int64, upd models.CategoryUpdate) (*models.Category, error) {
	query := `
		UPDATE categories SET
			category_name = COALESCE($2, category_name),
			category_image = COALESCE($3, category_image),
			category_status = COALESCE($4, category_status),
			updated_at = NOW()
		WHERE category_id = $1
		RETURNING ` + categoryColumns
	args := []any{id, upd.Name, upd.Image, upd.Status}

	var c models.Category
	err := r.db.GetContext(ctx, &c, query, args...)
	logQuery(query, args, c.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
