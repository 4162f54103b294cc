package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-media-channels/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestBlobHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		path         string
		mockSetup    func(m *MockBlobOpener)
		expectedCode int
		expectedType string
		expectedBody string
	}{
		{
			name: "png",
			path: "categories/Category-1.png",
			mockSetup: func(m *MockBlobOpener) {
				m.EXPECT().Open(gomock.Any(), "categories/Category-1.png").
					Return(io.NopCloser(strings.NewReader("png-bytes")), nil)
			},
			expectedCode: http.StatusOK,
			expectedType: "image/png",
			expectedBody: "png-bytes",
		},
		{
			name: "missing",
			path: "media/Audio-x.mp3",
			mockSetup: func(m *MockBlobOpener) {
				m.EXPECT().Open(gomock.Any(), "media/Audio-x.mp3").Return(nil, storage.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedType: "application/json",
		},
		{
			name: "backend down",
			path: "media/Audio-x.mp3",
			mockSetup: func(m *MockBlobOpener) {
				m.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedType: "application/json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBlobs := NewMockBlobOpener(ctrl)
			tt.mockSetup(mockBlobs)

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/uploads/"+tt.path, nil), "*", tt.path)
			rr := httptest.NewRecorder()
			NewBlobHandler(mockBlobs)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), tt.expectedType)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rr.Body.String())
			}
			assert.NotContains(t, rr.Body.String(), "connection refused")
		})
	}
}

func TestBlobHeadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		path         string
		mockSetup    func(m *MockBlobChecker)
		expectedCode int
		expectedType string
	}{
		{
			name: "stored",
			path: "media/Audio-1.mp3",
			mockSetup: func(m *MockBlobChecker) {
				m.EXPECT().Exists(gomock.Any(), "media/Audio-1.mp3").Return(true, nil)
			},
			expectedCode: http.StatusOK,
			expectedType: "audio/mpeg",
		},
		{
			name: "missing",
			path: "media/Audio-2.mp3",
			mockSetup: func(m *MockBlobChecker) {
				m.EXPECT().Exists(gomock.Any(), "media/Audio-2.mp3").Return(false, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "backend down",
			path: "media/Audio-3.mp3",
			mockSetup: func(m *MockBlobChecker) {
				m.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBlobs := NewMockBlobChecker(ctrl)
			tt.mockSetup(mockBlobs)

			req := withURLParam(httptest.NewRequest(http.MethodHead, "/uploads/"+tt.path, nil), "*", tt.path)
			rr := httptest.NewRecorder()
			NewBlobHeadHandler(mockBlobs)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Empty(t, rr.Body.String())
			if tt.expectedType != "" {
				assert.Equal(t, tt.expectedType, rr.Header().Get("Content-Type"))
			}
		})
	}
}
