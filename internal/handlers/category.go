package handlers

//go:generate mockgen -source=category.go -destination=category_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-media-channels/internal/models"
	"github.com/sbilibin2017/gw-media-channels/internal/services"
	"github.com/sbilibin2017/gw-media-channels/internal/storage"
)

type CategoryCreator interface {
	CreateCategory(ctx context.Context, name string, status *int, image *storage.Upload) (*models.Category, error)
}

type CategoryLister interface {
	GetCategories(ctx context.Context, includeAll bool) ([]models.Category, bool, error)
}

type CategoryUpdater interface {
	UpdateCategory(ctx context.Context, id int64, upd models.CategoryUpdate, image *storage.Upload) (*models.Category, error)
}

type CategoryDeleter interface {
	DeleteCategory(ctx context.Context, id int64) error
}

// PrivilegeChecker gates the include_all listing variant.
type PrivilegeChecker interface {
	RequirePrivileged(ctx context.Context, userID int64) error
}

// requireIncludeAll reads include_all and, when it is set, checks the caller
// may see inactive entities. It writes the error response itself.
func requireIncludeAll(w http.ResponseWriter, r *http.Request, checker PrivilegeChecker) (bool, bool) {
	includeAll, err := queryBool(r, "include_all")
	if err != nil {
		writeError(w, http.StatusBadRequest, "include_all must be a boolean")
		return false, false
	}
	if !includeAll {
		return false, true
	}

	userID, ok := currentUserID(w, r)
	if !ok {
		return false, false
	}
	err = checker.RequirePrivileged(r.Context(), userID)
	if errors.Is(err, services.ErrUserNotFound) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return false, false
	}
	if err != nil {
		writeServiceError(w, r, err)
		return false, false
	}
	return true, true
}

// NewAddCategoryHandler creates a category from a multipart form.
// @Summary Add category
// @Tags categories
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param category_name formData string true "Category name"
// @Param category_status formData int false "1 active (default), 0 inactive"
// @Param category_image formData file false "jpeg or png image"
// @Success 201 {object} handlers.Response{data=models.Category}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /addCategory [post]
func NewAddCategoryHandler(svc CategoryCreator, maxBytes int64, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseMultipart(w, r, maxBytes, 1) {
			return
		}

		name := formString(r, "category_name")
		if name == nil {
			writeError(w, http.StatusBadRequest, "Category name is required")
			return
		}
		status, err := formInt(r, "category_status")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		image, closer, err := formFile(r, "category_image", maxBytes)
		if err != nil {
			writeError(w, http.StatusBadRequest, "File upload error: "+err.Error())
			return
		}
		defer closer.Close()

		category, err := svc.CreateCategory(r.Context(), *name, status, image)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeOK(w, http.StatusCreated, "Category created successfully", categoryView(baseURL, category))
	}
}

// NewGetCategoriesHandler lists categories through the cache.
// @Summary List categories
// @Description Active categories by default; include_all=true (privileged only) adds inactive ones.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param include_all query bool false "Include inactive categories"
// @Success 200 {object} handlers.Response{data=[]models.Category}
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /getCategories [get]
func NewGetCategoriesHandler(svc CategoryLister, checker PrivilegeChecker, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeAll, ok := requireIncludeAll(w, r, checker)
		if !ok {
			return
		}

		categories, cached, err := svc.GetCategories(r.Context(), includeAll)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeListing(w, "Categories retrieved successfully", categoriesView(baseURL, categories), cached)
	}
}

// NewUpdateCategoryHandler updates a category from a multipart form.
// @Summary Update category
// @Tags categories
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param category_name formData string false "Category name"
// @Param category_status formData int false "1 active, 0 inactive"
// @Param category_image formData file false "Replacement image"
// @Success 200 {object} handlers.Response{data=models.Category}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Router /updateCategory/{id} [put]
func NewUpdateCategoryHandler(svc CategoryUpdater, maxBytes int64, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid category id")
			return
		}
		if !parseMultipart(w, r, maxBytes, 1) {
			return
		}

		status, err := formInt(r, "category_status")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		image, closer, err := formFile(r, "category_image", maxBytes)
		if err != nil {
			writeError(w, http.StatusBadRequest, "File upload error: "+err.Error())
			return
		}
		defer closer.Close()

		upd := models.CategoryUpdate{Name: formString(r, "category_name"), Status: status}
		category, err := svc.UpdateCategory(r.Context(), id, upd, image)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeOK(w, http.StatusOK, "Category updated successfully", categoryView(baseURL, category))
	}
}

// NewDeleteCategoryHandler soft deletes a category.
// @Summary Delete category
// @Description Marks the category inactive; it is never physically removed.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Router /deleteCategory/{id} [post]
func NewDeleteCategoryHandler(svc CategoryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid category id")
			return
		}

		if err := svc.DeleteCategory(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeOK(w, http.StatusOK, "Category deleted successfully", nil)
	}
}
