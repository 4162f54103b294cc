package handlers

//go:generate mockgen -source=blob.go -destination=blob_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-media-channels/internal/logger"
	"github.com/sbilibin2017/gw-media-channels/internal/storage"
)

// BlobOpener reads stored uploads.
type BlobOpener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// BlobChecker reports whether an upload is stored.
type BlobChecker interface {
	Exists(ctx context.Context, name string) (bool, error)
}

// NewBlobHandler serves stored uploads under /uploads/*.
// @Summary Download an upload
// @Tags uploads
// @Produce octet-stream
// @Param path path string true "Blob name"
// @Success 200 {file} binary
// @Failure 404 {object} handlers.ErrorResponse
// @Router /uploads/{path} [get]
func NewBlobHandler(blobs BlobOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "*")

		rc, err := blobs.Open(r.Context(), name)
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "File not found")
			return
		}
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		defer rc.Close()

		if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, rc); err != nil {
			logger.Log.Infow("blob download interrupted", "name", name, "err", err)
		}
	}
}

// NewBlobHeadHandler answers HEAD /uploads/* from blob metadata without
// reading the content.
// @Summary Check an upload
// @Tags uploads
// @Param path path string true "Blob name"
// @Success 200
// @Failure 404
// @Router /uploads/{path} [head]
func NewBlobHeadHandler(blobs BlobChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "*")

		ok, err := blobs.Exists(r.Context(), name)
		if err != nil {
			logger.Log.Errorw("failed to stat blob", "name", name, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)
	}
}
