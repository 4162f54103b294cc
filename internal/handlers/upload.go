package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-media-channels/internal/storage"
)

// multipartMemory is how much of a multipart body is buffered in memory
// before parts spill to temporary files.
const multipartMemory = 8 << 20

// parseMultipart parses a multipart form whose files may each be up to
// maxBytes. It writes the 400 response itself on failure.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64, files int) bool {
	r.Body = http.MaxBytesReader(w, r.Body, int64(files)*maxBytes+(1<<20))
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, "File upload error: "+storage.ErrTooLarge.Error())
			return false
		}
		writeError(w, http.StatusBadRequest, "File upload error: invalid multipart form")
		return false
	}
	return true
}

// formFile returns the named file as a checked upload, or nil when the field
// is absent. The returned closer must be called once the upload is stored.
func formFile(r *http.Request, field string, maxBytes int64) (*storage.Upload, io.Closer, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nopCloser{}, nil
	}
	if err != nil {
		return nil, nopCloser{}, fmt.Errorf("%s: %w", field, err)
	}

	up, err := checkedUpload(file, header, maxBytes)
	if err != nil {
		file.Close()
		return nil, nopCloser{}, fmt.Errorf("%s: %w", field, err)
	}
	return up, file, nil
}

func checkedUpload(file multipart.File, header *multipart.FileHeader, maxBytes int64) (*storage.Upload, error) {
	contentType := header.Header.Get("Content-Type")
	ext, err := storage.CheckUpload(contentType, header.Size, maxBytes)
	if err != nil {
		return nil, err
	}
	return &storage.Upload{
		Reader:      file,
		Size:        header.Size,
		ContentType: contentType,
		Ext:         ext,
	}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// formString returns a trimmed form value, or nil when it is empty.
func formString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return nil
	}
	return &v
}

// formInt parses an optional integer form value.
func formInt(r *http.Request, name string) (*int, error) {
	raw := formString(r, name)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}

// formInt64 parses an optional int64 form value.
func formInt64(r *http.Request, name string) (*int64, error) {
	raw := formString(r, name)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}
