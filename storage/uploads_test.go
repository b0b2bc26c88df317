package storage

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

type stubBackend struct {
	fail    bool
	sawFile bool
	paths   []string
}

func (s *stubBackend) Store(ctx context.Context, path, originalName, mimeType string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	s.sawFile = true
	s.paths = append(s.paths, path)
	if s.fail {
		return "", errors.New("backend down")
	}
	return "https://cdn.example.com/" + originalName, nil
}

func TestStoreLinkRemovesTempFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	backend := &stubBackend{}
	tempDir := t.TempDir()
	gateway := NewUploadGateway(backend, tempDir)

	url, err := gateway.StoreLink(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("StoreLink: %v", err)
	}
	if url == "" {
		t.Fatal("expected a public URL")
	}
	if !backend.sawFile {
		t.Fatal("backend never saw the staged file")
	}

	assertDirEmpty(t, tempDir)
}

func TestStoreLinkUnreachableLeavesNoTempFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	backend := &stubBackend{}
	tempDir := t.TempDir()
	gateway := NewUploadGateway(backend, tempDir)

	_, err := gateway.StoreLink(context.Background(), server.URL)
	if !errors.Is(err, ErrFetchLink) {
		t.Fatalf("expected ErrFetchLink, got %v", err)
	}
	if backend.sawFile {
		t.Fatal("backend must not be called when the fetch fails")
	}

	assertDirEmpty(t, tempDir)
}

func TestStoreLinkNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	gateway := NewUploadGateway(&stubBackend{}, t.TempDir())

	if _, err := gateway.StoreLink(context.Background(), server.URL); !errors.Is(err, ErrFetchLink) {
		t.Fatalf("expected ErrFetchLink, got %v", err)
	}
}

func TestStoreLinkBackendFailureStillCleansUp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	backend := &stubBackend{fail: true}
	tempDir := t.TempDir()
	gateway := NewUploadGateway(backend, tempDir)

	_, err := gateway.StoreLink(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected the backend failure to propagate")
	}
	if errors.Is(err, ErrFetchLink) {
		t.Fatal("a backend failure must not be reported as a fetch failure")
	}

	assertDirEmpty(t, tempDir)
}

func TestStoreLinkStagesDistinctTempFiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	backend := &stubBackend{}
	gateway := NewUploadGateway(backend, t.TempDir())

	// back-to-back requests land within the same millisecond; a clock-based
	// temp name would collide and one request would remove the other's file
	for i := 0; i < 5; i++ {
		if _, err := gateway.StoreLink(context.Background(), server.URL); err != nil {
			t.Fatalf("StoreLink %d: %v", i, err)
		}
	}

	seen := make(map[string]bool, len(backend.paths))
	for _, path := range backend.paths {
		if seen[path] {
			t.Fatalf("temp path %q reused across requests", path)
		}
		seen[path] = true
	}
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		t.Fatalf("reading temp dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("orphaned temp files left behind: %d", len(entries))
	}
}
