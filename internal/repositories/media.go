package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-media-channels/internal/models"
)

const mediaColumns = `m.media_id, m.user_id, m.title, m.description, m.category_id, m.banner, m.audio,
	m.duration, m.language, m.tags, m."cast", m.crew, m.release_date, m.rating, m.listener,
	m.media_status, m.created_at, m.updated_at`

// mediaSelect joins the category and uploader names at read time.
const mediaSelect = `
	SELECT ` + mediaColumns + `, c.category_name, u.name AS uploader_name
	FROM media m
	LEFT JOIN categories c ON c.category_id = m.category_id
	LEFT JOIN users u ON u.id = m.user_id
`

type MediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// Create inserts m with pending status unless m.Status says otherwise and
// returns the stored row.
func (r *MediaRepository) Create(ctx context.Context, m *models.Media) (*models.Media, error) {
	query := `
		WITH m AS (
			INSERT INTO media (user_id, title, description, category_id, banner, audio, duration,
				language, tags, "cast", crew, release_date, media_status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, COALESCE($12, NOW()), $13, NOW(), NOW())
			RETURNING *
		)
		SELECT ` + mediaColumns + `, c.category_name, u.name AS uploader_name
		FROM m
		LEFT JOIN categories c ON c.category_id = m.category_id
		LEFT JOIN users u ON u.id = m.user_id
	`
	status := m.Status
	if !models.IsValidMediaStatus(status) || status == models.MediaHidden {
		status = models.MediaPending
	}
	args := []any{m.UserID, m.Title, m.Description, m.CategoryID, m.Banner, m.Audio, m.Duration,
		m.Language, m.Tags, m.Cast, m.Crew, m.ReleaseDate, status}

	var created models.Media
	err := r.db.GetContext(ctx, &created, query, args...)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID returns nil without error when the media does not exist.
func (r *MediaRepository) GetByID(ctx context.Context, id int64) (*models.Media, error) {
	query := mediaSelect + ` WHERE m.media_id = $1`

	var m models.Media
	err := r.db.GetContext(ctx, &m, query, id)
	logQuery(query, []any{id}, m.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns media matching filter. Without IncludeAll only approved media
// is returned.
func (r *MediaRepository) List(ctx context.Context, filter models.MediaFilter) ([]models.Media, error) {
	query := mediaSelect + `
		WHERE ($1::BIGINT IS NULL OR m.category_id = $1)
		  AND ($2 OR m.media_status = $3)
		ORDER BY m.media_id DESC
	`
	args := []any{filter.CategoryID, filter.IncludeAll, models.MediaApproved}

	media := []models.Media{}
	err := r.db.SelectContext(ctx, &media, query, args...)
	logQuery(query, args, len(media), err)

	if err != nil {
		return nil, err
	}
	return media, nil
}

// ListByUser returns every upload of userID regardless of status.
func (r *MediaRepository) ListByUser(ctx context.Context, userID int64) ([]models.Media, error) {
	query := mediaSelect + ` WHERE m.user_id = $1 ORDER BY m.media_id DESC`

	media := []models.Media{}
	err := r.db.SelectContext(ctx, &media, query, userID)
	logQuery(query, []any{userID}, len(media), err)

	if err != nil {
		return nil, err
	}
	return media, nil
}

// UpdateStatus sets the moderation status. It returns nil without error when
// the media does not exist.
func (r *MediaRepository) UpdateStatus(ctx context.Context, id int64, status int) (*models.Media, error) {
	query := `UPDATE media SET media_status = $2, updated_at = NOW() WHERE media_id = $1 RETURNING media_id`
	args := []any{id, status}

	var updatedID int64
	err := r.db.GetContext(ctx, &updatedID, query, args...)
	logQuery(query, args, updatedID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, updatedID)
}
