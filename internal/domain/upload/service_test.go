package upload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/foundit/foundit-api/internal/pkg/imaging"
)

type fakeStorage struct {
	puts   map[string][]byte
	putErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{puts: make(map[string][]byte)}
}

func (f *fakeStorage) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.puts[key] = data
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(f.puts, key)
	return nil
}

func (f *fakeStorage) GetURL(key string) string {
	return "https://cdn.example.com/" + key
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadStoresProcessedImage(t *testing.T) {
	store := newFakeStorage()
	svc := NewService(store, imaging.NewProcessor(), 10<<20)

	result, err := svc.Upload(context.Background(), bytes.NewReader(pngBytes(t, 64, 48)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(store.puts) != 1 {
		t.Fatalf("expected 1 stored object, got %d", len(store.puts))
	}
	if !strings.HasPrefix(result.URL, "https://cdn.example.com/reports/") {
		t.Fatalf("unexpected URL %s", result.URL)
	}
	if !strings.HasSuffix(result.URL, ".jpg") {
		t.Fatalf("expected jpg key, got %s", result.URL)
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	store := newFakeStorage()
	svc := NewService(store, imaging.NewProcessor(), 10<<20)

	_, err := svc.Upload(context.Background(), strings.NewReader("definitely not an image"))
	if !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("expected ErrInvalidImage, got %v", err)
	}
	if len(store.puts) != 0 {
		t.Fatal("expected nothing stored on failure")
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	store := newFakeStorage()
	svc := NewService(store, imaging.NewProcessor(), 128)

	_, err := svc.Upload(context.Background(), bytes.NewReader(pngBytes(t, 64, 48)))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUploadSurfacesStorageFailure(t *testing.T) {
	store := newFakeStorage()
	store.putErr = errors.New("bucket unreachable")
	svc := NewService(store, imaging.NewProcessor(), 10<<20)

	_, err := svc.Upload(context.Background(), bytes.NewReader(pngBytes(t, 64, 48)))
	if !errors.Is(err, ErrStoreFailed) {
		t.Fatalf("expected ErrStoreFailed, got %v", err)
	}
}

func TestRemoveDeletesStoredBlob(t *testing.T) {
	store := newFakeStorage()
	svc := NewService(store, imaging.NewProcessor(), 10<<20)

	result, err := svc.Upload(context.Background(), bytes.NewReader(pngBytes(t, 64, 48)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := svc.Remove(context.Background(), result.URL); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(store.puts) != 0 {
		t.Fatalf("expected blob removed, still have %d objects", len(store.puts))
	}
}

func TestRemoveIgnoresForeignURL(t *testing.T) {
	store := newFakeStorage()
	svc := NewService(store, imaging.NewProcessor(), 10<<20)

	if err := svc.Remove(context.Background(), "https://elsewhere.example.com/photo.jpg"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
