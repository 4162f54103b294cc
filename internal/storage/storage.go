package storage

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// DefaultMaxBytes is the per-file upload limit.
const DefaultMaxBytes int64 = 10 << 20

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
	ErrNotFound        = errors.New("blob not found")
)

// allowedTypes maps accepted upload content types to the extension stored on disk.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpeg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"audio/mpeg": ".mp3",
	"audio/mp3":  ".mp3",
	"audio/wav":  ".wav",
}

// CheckUpload validates an upload against the type allowlist and size limit
// and returns the extension to store it under.
func CheckUpload(contentType string, size, maxBytes int64) (string, error) {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := allowedTypes[ct]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if size > maxBytes {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, size, maxBytes)
	}
	return ext, nil
}

// Upload is a validated file ready to be stored.
type Upload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Ext         string
}

// GenerateFileName returns "<prefix>-<uuid><ext>".
func GenerateFileName(prefix, ext string) string {
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	name := uuid.New().String() + ext
	if prefix == "" {
		return name
	}
	return prefix + "-" + name
}

// objectName joins dir and a fresh file name into a slash separated blob name.
func objectName(dir, prefix, ext string) string {
	name := GenerateFileName(prefix, ext)
	if dir == "" {
		return name
	}
	return path.Join(dir, name)
}

// cleanName rejects names that could escape the storage root.
func cleanName(name string) (string, error) {
	name = strings.TrimPrefix(name, "/")
	if name == "" || strings.Contains(name, "..") || strings.Contains(name, `\`) || path.Clean(name) != name {
		return "", fmt.Errorf("%w: invalid name %q", ErrNotFound, name)
	}
	return name, nil
}
