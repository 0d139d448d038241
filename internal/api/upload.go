package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sharknutrition-backend/internal/uploader"
)

const (
	reviewImageMaxBytes = 2 << 20 // 2 MiB
	entityImageMaxBytes = 3 << 20 // 3 MiB
	createGalleryMax    = 4
	updateGalleryMax    = 10
)

var errNotAnImage = errors.New("Only image files are allowed")

// formFile reads a single optional multipart file. Missing file is not an
// error; oversized or non-image files are rejected before any handler logic.
func formFile(c *gin.Context, field string, maxBytes int64) (*uploader.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return readFormFile(header, maxBytes)
}

// formFiles reads up to maxCount files from a multipart array field.
func formFiles(c *gin.Context, field string, maxCount int, maxBytes int64) ([]uploader.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	headers := form.File[field]
	if len(headers) > maxCount {
		return nil, fmt.Errorf("Too many files (max %d)", maxCount)
	}
	files := make([]uploader.File, 0, len(headers))
	for _, header := range headers {
		file, err := readFormFile(header, maxBytes)
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}
	return files, nil
}

func readFormFile(header *multipart.FileHeader, maxBytes int64) (*uploader.File, error) {
	if header.Size > maxBytes {
		return nil, fmt.Errorf("File too large (max %dMB)", maxBytes>>20)
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return nil, errNotAnImage
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxBytes))
	if err != nil {
		return nil, err
	}
	return &uploader.File{Name: header.Filename, Data: data}, nil
}
