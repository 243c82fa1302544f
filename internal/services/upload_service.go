package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"eventcms_backend/internal/imageprocessor"
	"eventcms_backend/internal/logger"
	"eventcms_backend/internal/storage"
	"eventcms_backend/pkg/apperrors"
)

// assetClass describes the processing rules for one kind of upload.
type assetClass struct {
	dir        string
	maxBytes   int64
	extensions []string
	// fit bounds the image within maxWidth x maxHeight; fill crops to the
	// exact size. rawPassthrough extensions skip processing entirely.
	fill           bool
	maxWidth       int
	maxHeight      int
	rawPassthrough []string
}

const (
	mb             = 1 << 20
	defaultMaxSize = 5 * mb
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// assetClasses keys are the public asset type names accepted by the
// upload endpoint.
var assetClasses = map[string]assetClass{
	"company-logo": {
		dir: "company", maxBytes: 2 * mb, extensions: imageExtensions,
		maxWidth: 400, maxHeight: 200,
	},
	"company-favicon": {
		dir: "company", maxBytes: 2 * mb,
		extensions: append([]string{".ico"}, imageExtensions...),
		fill:       true, maxWidth: 32, maxHeight: 32,
		rawPassthrough: []string{".ico"},
	},
	"gallery-image": {
		dir: "galleries", maxBytes: defaultMaxSize, extensions: imageExtensions,
		maxWidth: 1200,
	},
	"portfolio-image": {
		dir: "portfolios", maxBytes: defaultMaxSize, extensions: imageExtensions,
		maxWidth: 1920,
	},
	"team-photo": {
		dir: "team", maxBytes: 2 * mb, extensions: imageExtensions,
		fill: true, maxWidth: 400, maxHeight: 400,
	},
	"service-image": {
		dir: "services", maxBytes: defaultMaxSize, extensions: imageExtensions,
		maxWidth: 1200,
	},
	"hero-image": {
		dir: "heroes", maxBytes: defaultMaxSize, extensions: imageExtensions,
		maxWidth: 1920,
	},
	"rental-image": {
		dir: "rentals", maxBytes: defaultMaxSize, extensions: imageExtensions,
		maxWidth: 1200,
	},
}

// UploadResult describes a stored asset.
type UploadResult struct {
	Path     string `json:"path"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type UploadService interface {
	Upload(ctx context.Context, assetType string, file *multipart.FileHeader) (*UploadResult, error)
	Delete(ctx context.Context, path string) error
	AssetTypes() []string
}

type uploadService struct {
	storage   storage.Storage
	processor *imageprocessor.Processor
}

func NewUploadService(store storage.Storage, processor *imageprocessor.Processor) UploadService {
	return &uploadService{storage: store, processor: processor}
}

func (s *uploadService) AssetTypes() []string {
	types := make([]string, 0, len(assetClasses))
	for name := range assetClasses {
		types = append(types, name)
	}
	return types
}

// Upload validates, processes and stores one file. Validation problems
// surface as 422; storage problems surface as a generic 500 so internals
// never leak to clients.
func (s *uploadService) Upload(ctx context.Context, assetType string, file *multipart.FileHeader) (*UploadResult, error) {
	class, ok := assetClasses[assetType]
	if !ok {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown asset type: %s", assetType))
	}

	if file == nil || file.Size == 0 {
		return nil, apperrors.UploadError(errors.New("empty file"), true)
	}
	if file.Size > class.maxBytes {
		return nil, apperrors.UploadError(
			fmt.Errorf("file exceeds %d MB limit", class.maxBytes/mb), true)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !contains(class.extensions, ext) {
		return nil, apperrors.UploadError(fmt.Errorf("unsupported file extension: %s", ext), true)
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.UploadError(err, false)
	}
	defer src.Close()

	var (
		body        io.Reader
		contentType string
		outExt      string
	)

	if contains(class.rawPassthrough, ext) {
		body = src
		contentType = "image/x-icon"
		outExt = ext
	} else {
		img, format, err := s.processor.Decode(src)
		if err != nil {
			return nil, apperrors.UploadError(err, true)
		}

		if class.fill {
			img = s.processor.Fill(img, class.maxWidth, class.maxHeight)
		} else {
			img = s.processor.Fit(img, class.maxWidth, class.maxHeight)
		}

		// PNG stays PNG to keep transparency; everything else becomes JPEG.
		if format == "png" {
			outExt = ".png"
			contentType = "image/png"
		} else {
			outExt = ".jpg"
			contentType = "image/jpeg"
			format = "jpeg"
		}
		body, err = s.processor.Encode(img, strings.TrimPrefix(outExt, "."))
		if err != nil {
			return nil, apperrors.UploadError(err, false)
		}
	}

	name, err := randomFilename(outExt)
	if err != nil {
		return nil, apperrors.UploadError(err, false)
	}
	path := class.dir + "/" + name

	var buf bytes.Buffer
	size, err := buf.ReadFrom(body)
	if err != nil {
		return nil, apperrors.UploadError(err, false)
	}

	if err := s.storage.Save(ctx, path, &buf, contentType); err != nil {
		logger.CtxError(ctx, "failed to store upload", "path", path, "error", err)
		return nil, apperrors.UploadError(err, false)
	}

	return &UploadResult{
		Path:     path,
		URL:      s.storage.URL(path),
		Size:     size,
		MimeType: contentType,
	}, nil
}

// Delete removes a previously uploaded asset. Paths outside the known
// asset directories are rejected.
func (s *uploadService) Delete(ctx context.Context, path string) error {
	dir := strings.SplitN(strings.TrimLeft(path, "/"), "/", 2)[0]
	known := false
	for _, class := range assetClasses {
		if class.dir == dir {
			known = true
			break
		}
	}
	if !known {
		return apperrors.NewBadRequestError("invalid asset path")
	}

	if err := s.storage.Delete(ctx, path); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// randomFilename builds "<timestamp>-<8 hex>.<ext>" names that sort by
// upload time and never collide in practice.
func randomFilename(ext string) (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s%s", time.Now().Format("20060102-150405"), hex.EncodeToString(buf), ext), nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
