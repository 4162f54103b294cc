package services

//go:generate mockgen -source=listing.go -destination=listing_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-media-channels/internal/logger"
	"github.com/sbilibin2017/gw-media-channels/internal/models"
	"github.com/sbilibin2017/gw-media-channels/internal/storage"
)

// DefaultListingTTL is how long a computed listing stays cached.
const DefaultListingTTL = 5 * time.Minute

const (
	categoriesKey    = "categories"
	categoriesAllKey = "categories:all"
	mediaKeyPrefix   = "media:"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrMediaNotFound    = errors.New("media not found")
)

// Blob directories and name prefixes.
const (
	categoryDir    = "categories"
	categoryPrefix = "Category"
	mediaDir       = "media"
	bannerPrefix   = "Banner"
	audioPrefix    = "Audio"
)

// Cache is the read-through cache behind listings.
type Cache interface {
	Get(key string) (any, bool)
	Generation() uint64
	SetIfGeneration(key string, value any, ttl time.Duration, gen uint64) bool
	Invalidate(key string)
	InvalidatePrefix(prefix string)
}

// CategoryStore persists categories.
type CategoryStore interface {
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context, includeAll bool) ([]models.Category, error)
	Update(ctx context.Context, id int64, upd models.CategoryUpdate) (*models.Category, error)
}

// MediaStore persists media records.
type MediaStore interface {
	Create(ctx context.Context, media *models.Media) (*models.Media, error)
	List(ctx context.Context, filter models.MediaFilter) ([]models.Media, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Media, error)
	UpdateStatus(ctx context.Context, id int64, status int) (*models.Media, error)
}

// BlobStore stores uploaded files.
type BlobStore interface {
	Save(ctx context.Context, dir, prefix string, up storage.Upload) (string, error)
	Delete(ctx context.Context, name string) error
}

// ListingOpt configures a ListingService.
type ListingOpt func(*ListingService)

// WithTTL overrides DefaultListingTTL.
func WithTTL(ttl time.Duration) ListingOpt {
	return func(s *ListingService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// ListingService serves category and media listings through the cache and
// performs the writes that must invalidate them.
//
// Every write invalidates after the store call returns successfully and before
// the method returns, so a caller that saw the write acknowledged can never
// read an older cached listing. Reads store their result only if no
// invalidation happened while they were querying.
type ListingService struct {
	cache      Cache
	categories CategoryStore
	media      MediaStore
	blobs      BlobStore
	ttl        time.Duration
}

func NewListingService(
	cache Cache,
	categories CategoryStore,
	media MediaStore,
	blobs BlobStore,
	opts ...ListingOpt,
) *ListingService {
	s := &ListingService{
		cache:      cache,
		categories: categories,
		media:      media,
		blobs:      blobs,
		ttl:        DefaultListingTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func categoriesCacheKey(includeAll bool) string {
	if includeAll {
		return categoriesAllKey
	}
	return categoriesKey
}

// mediaCacheKey builds media:{category_id|*}:{0|1}.
func mediaCacheKey(filter models.MediaFilter) string {
	category := "*"
	if filter.CategoryID != nil {
		category = strconv.FormatInt(*filter.CategoryID, 10)
	}
	all := "0"
	if filter.IncludeAll {
		all = "1"
	}
	return mediaKeyPrefix + category + ":" + all
}

// GetCategories returns active categories, or all of them when includeAll is
// set. The bool result reports whether the listing came from the cache.
func (s *ListingService) GetCategories(ctx context.Context, includeAll bool) ([]models.Category, bool, error) {
	key := categoriesCacheKey(includeAll)
	if v, ok := s.cache.Get(key); ok {
		if cats, ok := v.([]models.Category); ok {
			return cats, true, nil
		}
	}

	gen := s.cache.Generation()
	cats, err := s.categories.List(ctx, includeAll)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "include_all", includeAll, "err", err)
		return nil, false, err
	}
	s.cache.SetIfGeneration(key, cats, s.ttl, gen)
	return cats, false, nil
}

// GetMedia returns the media listing for filter with category and uploader
// names joined in. The bool result reports whether it came from the cache.
func (s *ListingService) GetMedia(ctx context.Context, filter models.MediaFilter) ([]models.Media, bool, error) {
	key := mediaCacheKey(filter)
	if v, ok := s.cache.Get(key); ok {
		if items, ok := v.([]models.Media); ok {
			return items, true, nil
		}
	}

	gen := s.cache.Generation()
	items, err := s.media.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list media", "key", key, "err", err)
		return nil, false, err
	}
	s.cache.SetIfGeneration(key, items, s.ttl, gen)
	return items, false, nil
}

// ListUserMedia returns every upload of userID regardless of status. It is not cached.
func (s *ListingService) ListUserMedia(ctx context.Context, userID int64) ([]models.Media, error) {
	items, err := s.media.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user media", "user_id", userID, "err", err)
		return nil, err
	}
	return items, nil
}

// CreateCategory stores a category with an optional image. Status defaults to active.
func (s *ListingService) CreateCategory(ctx context.Context, name string, status *int, image *storage.Upload) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	st := models.CategoryActive
	if status != nil {
		if !isValidCategoryStatus(*status) {
			return nil, fmt.Errorf("%w: invalid category status %d", ErrValidation, *status)
		}
		st = *status
	}

	var saved []string
	imagePath, err := s.saveBlob(ctx, image, categoryDir, categoryPrefix, &saved)
	if err != nil {
		return nil, err
	}

	created, err := s.categories.Create(ctx, &models.Category{Name: name, Image: imagePath, Status: st})
	if err != nil {
		logger.Log.Errorw("failed to create category", "name", name, "err", err)
		s.discardBlobs(ctx, saved)
		return nil, err
	}

	s.invalidateCategories(false)
	return created, nil
}

// UpdateCategory applies upd and, when image is given, replaces the stored
// image. The previous image is deleted only after the row is updated.
func (s *ListingService) UpdateCategory(ctx context.Context, id int64, upd models.CategoryUpdate, image *storage.Upload) (*models.Category, error) {
	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: category name must not be empty", ErrValidation)
		}
		upd.Name = &trimmed
	}
	if upd.Status != nil && !isValidCategoryStatus(*upd.Status) {
		return nil, fmt.Errorf("%w: invalid category status %d", ErrValidation, *upd.Status)
	}

	current, err := s.categories.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get category", "category_id", id, "err", err)
		return nil, err
	}
	if current == nil {
		return nil, ErrCategoryNotFound
	}

	var saved []string
	newImage, err := s.saveBlob(ctx, image, categoryDir, categoryPrefix, &saved)
	if err != nil {
		return nil, err
	}
	upd.Image = newImage

	updated, err := s.categories.Update(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update category", "category_id", id, "err", err)
		s.discardBlobs(ctx, saved)
		return nil, err
	}
	if updated == nil {
		s.discardBlobs(ctx, saved)
		return nil, ErrCategoryNotFound
	}

	s.invalidateCategories(true)

	if newImage != nil && current.Image != nil && *current.Image != *newImage {
		s.discardBlobs(ctx, []string{*current.Image})
	}
	return updated, nil
}

// DeleteCategory marks the category inactive.
func (s *ListingService) DeleteCategory(ctx context.Context, id int64) error {
	inactive := models.CategoryInactive
	updated, err := s.categories.Update(ctx, id, models.CategoryUpdate{Status: &inactive})
	if err != nil {
		logger.Log.Errorw("failed to delete category", "category_id", id, "err", err)
		return err
	}
	if updated == nil {
		return ErrCategoryNotFound
	}

	s.invalidateCategories(true)
	return nil
}

// CreateMedia stores a pending media record for m.UserID with optional banner
// and audio files.
func (s *ListingService) CreateMedia(ctx context.Context, m *models.Media, banner, audio *storage.Upload) (*models.Media, error) {
	m.Title = strings.TrimSpace(m.Title)
	if m.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if m.CategoryID != nil {
		cat, err := s.categories.GetByID(ctx, *m.CategoryID)
		if err != nil {
			logger.Log.Errorw("failed to get category", "category_id", *m.CategoryID, "err", err)
			return nil, err
		}
		if cat == nil {
			return nil, ErrCategoryNotFound
		}
	}

	var saved []string
	bannerPath, err := s.saveBlob(ctx, banner, mediaDir, bannerPrefix, &saved)
	if err != nil {
		return nil, err
	}
	audioPath, err := s.saveBlob(ctx, audio, mediaDir, audioPrefix, &saved)
	if err != nil {
		s.discardBlobs(ctx, saved)
		return nil, err
	}

	toSave := *m
	toSave.Banner = bannerPath
	toSave.Audio = audioPath
	toSave.Status = models.MediaPending

	created, err := s.media.Create(ctx, &toSave)
	if err != nil {
		logger.Log.Errorw("failed to create media", "user_id", m.UserID, "err", err)
		s.discardBlobs(ctx, saved)
		return nil, err
	}

	s.InvalidateMedia()
	return created, nil
}

// UpdateMediaStatus sets the moderation status of a media record.
func (s *ListingService) UpdateMediaStatus(ctx context.Context, id int64, status int) (*models.Media, error) {
	if !models.IsValidMediaStatus(status) {
		return nil, fmt.Errorf("%w: invalid media status %d", ErrValidation, status)
	}

	updated, err := s.media.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Log.Errorw("failed to update media status", "media_id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrMediaNotFound
	}

	s.InvalidateMedia()
	return updated, nil
}

// InvalidateMedia drops every cached media listing.
func (s *ListingService) InvalidateMedia() {
	s.cache.InvalidatePrefix(mediaKeyPrefix)
}

// invalidateCategories drops both category listings and, when the change can
// alter a joined category name or visibility, the media listings too.
func (s *ListingService) invalidateCategories(withMedia bool) {
	s.cache.Invalidate(categoriesKey)
	s.cache.Invalidate(categoriesAllKey)
	if withMedia {
		s.InvalidateMedia()
	}
}

func (s *ListingService) saveBlob(ctx context.Context, up *storage.Upload, dir, prefix string, saved *[]string) (*string, error) {
	if up == nil {
		return nil, nil
	}
	name, err := s.blobs.Save(ctx, dir, prefix, *up)
	if err != nil {
		logger.Log.Errorw("failed to save blob", "dir", dir, "err", err)
		return nil, err
	}
	*saved = append(*saved, name)
	return &name, nil
}

// discardBlobs removes blobs best effort, even after ctx is canceled.
func (s *ListingService) discardBlobs(ctx context.Context, names []string) {
	ctx = context.WithoutCancel(ctx)
	for _, name := range names {
		if err := s.blobs.Delete(ctx, name); err != nil {
			logger.Log.Errorw("failed to delete blob", "name", name, "err", err)
		}
	}
}

func isValidCategoryStatus(s int) bool {
	return s == models.CategoryActive || s == models.CategoryInactive
}
