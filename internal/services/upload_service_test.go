package services_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventcms_backend/internal/imageprocessor"
	"eventcms_backend/internal/services"
	"eventcms_backend/internal/storage"
	"eventcms_backend/pkg/apperrors"
)

func newUploadService(t *testing.T) (services.UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: dir, BaseURL: "http://localhost:8080/uploads"})
	require.NoError(t, err)
	return services.NewUploadService(store, imageprocessor.NewProcessor(85)), dir
}

// fileHeader builds a real multipart.FileHeader the way gin receives it.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestUploadStoresProcessedImage(t *testing.T) {
	svc, dir := newUploadService(t)

	fh := fileHeader(t, "team.jpg", jpegBytes(t, 800, 600))
	res, err := svc.Upload(context.Background(), "team-photo", fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.Path, "team/"))
	assert.True(t, strings.HasSuffix(res.Path, ".jpg"))
	assert.Equal(t, "http://localhost:8080/uploads/"+res.Path, res.URL)
	assert.Positive(t, res.Size)

	// Team photos are cropped square.
	f, err := os.Open(filepath.Join(dir, res.Path))
	require.NoError(t, err)
	defer f.Close()
	w, h, err := imageprocessor.GetImageDimensions(f)
	require.NoError(t, err)
	assert.Equal(t, 400, w)
	assert.Equal(t, 400, h)
}

func TestUploadResizesOversizedImages(t *testing.T) {
	svc, dir := newUploadService(t)

	fh := fileHeader(t, "wide.jpg", jpegBytes(t, 2500, 1000))
	res, err := svc.Upload(context.Background(), "portfolio-image", fh)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, res.Path))
	require.NoError(t, err)
	defer f.Close()
	w, _, err := imageprocessor.GetImageDimensions(f)
	require.NoError(t, err)
	assert.Equal(t, 1920, w)
}

func TestUploadRejectsUnknownAssetType(t *testing.T) {
	svc, _ := newUploadService(t)

	fh := fileHeader(t, "a.jpg", jpegBytes(t, 10, 10))
	_, err := svc.Upload(context.Background(), "profile-picture", fh)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestUploadRejectsBadInput(t *testing.T) {
	svc, _ := newUploadService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		fh   *multipart.FileHeader
	}{
		{"empty file", fileHeader(t, "empty.jpg", nil)},
		{"wrong extension", fileHeader(t, "doc.pdf", []byte("%PDF-1.4"))},
		{"not an image", fileHeader(t, "fake.jpg", []byte("just text pretending"))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Upload(ctx, "gallery-image", tc.fh)
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode)
		})
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc, _ := newUploadService(t)

	big := make([]byte, 3<<20)
	fh := fileHeader(t, "big.jpg", big)
	_, err := svc.Upload(context.Background(), "team-photo", fh)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode)
}

func TestDeleteRejectsForeignPaths(t *testing.T) {
	svc, _ := newUploadService(t)

	err := svc.Delete(context.Background(), "../../etc/passwd")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestDeleteRemovesStoredAsset(t *testing.T) {
	svc, dir := newUploadService(t)
	ctx := context.Background()

	fh := fileHeader(t, "g.jpg", jpegBytes(t, 50, 50))
	res, err := svc.Upload(ctx, "gallery-image", fh)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, res.Path))
	_, statErr := os.Stat(filepath.Join(dir, res.Path))
	assert.True(t, os.IsNotExist(statErr))
}
