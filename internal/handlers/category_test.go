package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-media-channels/internal/models"
	"github.com/sbilibin2017/gw-media-channels/internal/services"
	"github.com/sbilibin2017/gw-media-channels/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCategoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	png := testFile{field: "category_image", filename: "jazz.png", contentType: "image/png", body: []byte("png")}

	tests := []struct {
		name         string
		fields       map[string]string
		files        []testFile
		mockSetup    func(m *MockCategoryCreator)
		expectedCode int
	}{
		{
			name:   "with image",
			fields: map[string]string{"category_name": "Jazz"},
			files:  []testFile{png},
			mockSetup: func(m *MockCategoryCreator) {
				m.EXPECT().CreateCategory(gomock.Any(), "Jazz", nil, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ *int, up *storage.Upload) (*models.Category, error) {
						require.NotNil(t, up)
						assert.Equal(t, ".png", up.Ext)
						body, err := io.ReadAll(up.Reader)
						require.NoError(t, err)
						assert.Equal(t, "png", string(body))
						image := "categories/Category-1.png"
						return &models.Category{ID: 1, Name: "Jazz", Image: &image, Status: 1}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "inactive without image",
			fields: map[string]string{"category_name": "Rock", "category_status": "0"},
			mockSetup: func(m *MockCategoryCreator) {
				zero := 0
				m.EXPECT().CreateCategory(gomock.Any(), "Rock", &zero, nil).
					Return(&models.Category{ID: 2, Name: "Rock"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing name",
			fields:       map[string]string{"category_status": "1"},
			mockSetup:    func(m *MockCategoryCreator) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "pdf rejected",
			fields: map[string]string{"category_name": "Docs"},
			files: []testFile{{field: "category_image", filename: "a.pdf", contentType: "application/pdf",
				body: []byte("%PDF")}},
			mockSetup:    func(m *MockCategoryCreator) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "store failure",
			fields: map[string]string{"category_name": "Jazz"},
			mockSetup: func(m *MockCategoryCreator) {
				m.EXPECT().CreateCategory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCategoryCreator(ctrl)
			tt.mockSetup(mockSvc)

			req := multipartRequest(t, http.MethodPost, "/api/addCategory", tt.fields, tt.files...)
			rr := httptest.NewRecorder()
			NewAddCategoryHandler(mockSvc, storage.DefaultMaxBytes, testBaseURL)(rr, withUser(req, 1))

			assert.Equal(t, tt.expectedCode, rr.Code, rr.Body.String())
		})
	}
}

func TestAddCategoryHandler_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	big := testFile{field: "category_image", filename: "big.png", contentType: "image/png", body: make([]byte, 64)}
	req := multipartRequest(t, http.MethodPost, "/api/addCategory", map[string]string{"category_name": "Jazz"}, big)

	rr := httptest.NewRecorder()
	NewAddCategoryHandler(NewMockCategoryCreator(ctrl), 16, testBaseURL)(rr, withUser(req, 1))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode(t, rr).Message, "File upload error")
}

func TestGetCategoriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	image := "categories/Category-1.png"
	jazz := models.Category{ID: 1, Name: "Jazz", Image: &image, Status: models.CategoryActive}
	rock := models.Category{ID: 2, Name: "Rock", Status: models.CategoryInactive}

	tests := []struct {
		name         string
		query        string
		mockSetup    func(l *MockCategoryLister, c *MockPrivilegeChecker)
		expectedCode int
		expectedLen  int
		cached       bool
	}{
		{
			name: "default view",
			mockSetup: func(l *MockCategoryLister, c *MockPrivilegeChecker) {
				l.EXPECT().GetCategories(gomock.Any(), false).Return([]models.Category{jazz}, true, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
			cached:       true,
		},
		{
			name:  "include all as admin",
			query: "?include_all=true",
			mockSetup: func(l *MockCategoryLister, c *MockPrivilegeChecker) {
				c.EXPECT().RequirePrivileged(gomock.Any(), int64(1)).Return(nil)
				l.EXPECT().GetCategories(gomock.Any(), true).Return([]models.Category{jazz, rock}, false, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "include all as app user",
			query: "?include_all=true",
			mockSetup: func(l *MockCategoryLister, c *MockPrivilegeChecker) {
				c.EXPECT().RequirePrivileged(gomock.Any(), int64(1)).Return(services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:  "include all for a deleted user",
			query: "?include_all=true",
			mockSetup: func(l *MockCategoryLister, c *MockPrivilegeChecker) {
				c.EXPECT().RequirePrivileged(gomock.Any(), int64(1)).Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "bad flag",
			query:        "?include_all=maybe",
			mockSetup:    func(l *MockCategoryLister, c *MockPrivilegeChecker) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := NewMockCategoryLister(ctrl)
			checker := NewMockPrivilegeChecker(ctrl)
			tt.mockSetup(lister, checker)

			req := withUser(httptest.NewRequest(http.MethodGet, "/api/getCategories"+tt.query, nil), 1)
			rr := httptest.NewRecorder()
			NewGetCategoriesHandler(lister, checker, testBaseURL)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			resp := decode(t, rr)
			require.NotNil(t, resp.Cached)
			assert.Equal(t, tt.cached, *resp.Cached)

			var cats []models.Category
			require.NoError(t, json.Unmarshal(resp.Data, &cats))
			assert.Len(t, cats, tt.expectedLen)
			assert.Equal(t, testBaseURL+"/uploads/categories/Category-1.png", *cats[0].Image)
		})
	}

	// the listing handed in must not be rewritten
	assert.Equal(t, "categories/Category-1.png", *jazz.Image)
}

func TestUpdateCategoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCategoryUpdater(ctrl)
	name := "Smooth Jazz"
	mockSvc.EXPECT().
		UpdateCategory(gomock.Any(), int64(3), models.CategoryUpdate{Name: &name}, nil).
		Return(&models.Category{ID: 3, Name: name}, nil)
	mockSvc.EXPECT().
		UpdateCategory(gomock.Any(), int64(4), gomock.Any(), nil).
		Return(nil, services.ErrCategoryNotFound)

	req := withURLParam(multipartRequest(t, http.MethodPut, "/api/updateCategory/3",
		map[string]string{"category_name": name}), "id", "3")
	rr := httptest.NewRecorder()
	NewUpdateCategoryHandler(mockSvc, storage.DefaultMaxBytes, testBaseURL)(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = withURLParam(multipartRequest(t, http.MethodPut, "/api/updateCategory/4", nil), "id", "4")
	rr = httptest.NewRecorder()
	NewUpdateCategoryHandler(mockSvc, storage.DefaultMaxBytes, testBaseURL)(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	req = withURLParam(multipartRequest(t, http.MethodPut, "/api/updateCategory/x", nil), "id", "x")
	rr = httptest.NewRecorder()
	NewUpdateCategoryHandler(mockSvc, storage.DefaultMaxBytes, testBaseURL)(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteCategoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCategoryDeleter(ctrl)
	mockSvc.EXPECT().DeleteCategory(gomock.Any(), int64(1)).Return(nil)
	mockSvc.EXPECT().DeleteCategory(gomock.Any(), int64(2)).Return(services.ErrCategoryNotFound)

	for id, code := range map[string]int{"1": http.StatusOK, "2": http.StatusNotFound, "0": http.StatusBadRequest} {
		req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/deleteCategory/"+id, nil), "id", id)
		rr := httptest.NewRecorder()
		NewDeleteCategoryHandler(mockSvc)(rr, req)
		assert.Equal(t, code, rr.Code, "id %s", id)
	}
}
