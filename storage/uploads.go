package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"booking-clone-server/config"
)

// Uploader is the contract both upload backends satisfy: forward a local
// file to external storage and return its public URL.
type Uploader interface {
	Store(ctx context.Context, path, originalName, mimeType string) (string, error)
}

// ErrFetchLink marks a failure to download the remote resource of an
// upload-by-link request, as opposed to a backend storage failure.
var ErrFetchLink = errors.New("could not fetch link")

// Uploads is the process-wide gateway, set once at startup.
var Uploads *UploadGateway

// UploadGateway stages incoming files in a temp directory and forwards them
// to the configured backend. Temp copies are removed on every exit path.
type UploadGateway struct {
	backend Uploader
	tempDir string
	client  *http.Client
}

func NewUploadGateway(backend Uploader, tempDir string) *UploadGateway {
	return &UploadGateway{
		backend: backend,
		tempDir: tempDir,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func InitializeUploads(cfg *config.Config) error {
	var backend Uploader
	switch cfg.UploadBackend {
	case "s3":
		s3Backend, err := NewS3Uploader(context.Background(), cfg.S3)
		if err != nil {
			return err
		}
		backend = s3Backend
	default:
		backend = NewCloudinaryUploader(cfg.Cloudinary)
	}

	Uploads = NewUploadGateway(backend, cfg.TempDir)
	log.Println("upload gateway initialized, backend:", cfg.UploadBackend)
	return nil
}

// StoreLink downloads the remote image and forwards it to the backend.
func (g *UploadGateway) StoreLink(ctx context.Context, link string) (string, error) {
	name := fmt.Sprintf("photo%d.jpg", time.Now().UnixMilli())

	path, err := g.fetchToTemp(ctx, link, "photo-*.jpg")
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	mimeType := mime.TypeByExtension(filepath.Ext(name))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return g.backend.Store(ctx, path, name, mimeType)
}

// StoreFile stages one multipart upload in the temp directory and forwards
// it to the backend.
func (g *UploadGateway) StoreFile(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	path, err := g.writeTemp("upload-*"+filepath.Ext(fh.Filename), src)
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(fh.Filename))
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return g.backend.Store(ctx, path, fh.Filename, mimeType)
}

func (g *UploadGateway) fetchToTemp(ctx context.Context, link, pattern string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchLink, err)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchLink, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrFetchLink, res.StatusCode)
	}

	return g.writeTemp(pattern, res.Body)
}

// writeTemp stages src under a unique name so concurrent requests never
// share (or delete) each other's staged file.
func (g *UploadGateway) writeTemp(pattern string, src io.Reader) (string, error) {
	if err := os.MkdirAll(g.tempDir, 0o755); err != nil {
		return "", fmt.Errorf("creating temp dir: %w", err)
	}

	dst, err := os.CreateTemp(g.tempDir, pattern)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	path := dst.Name()

	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(path)
		if copyErr != nil {
			return "", fmt.Errorf("writing temp file: %w", copyErr)
		}
		return "", fmt.Errorf("writing temp file: %w", closeErr)
	}

	return path, nil
}
