package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestUploader() (*Uploader, *blob.Bucket) {
	bucket := memblob.OpenBucket(nil)
	return New(bucket, "https://cdn.test"), bucket
}

func pngWithAlpha(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 60, B: 30, A: 128})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadImageFlattensAlpha(t *testing.T) {
	up, bucket := newTestUploader()
	ctx := context.Background()

	url, err := up.UploadImage(ctx, pngWithAlpha(t))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(url, "https://cdn.test/") || !strings.HasSuffix(url, ".jpg") {
		t.Fatalf("unexpected public url: %s", url)
	}

	stored, err := bucket.ReadAll(ctx, up.Key(url))
	if err != nil {
		t.Fatalf("read back stored object: %v", err)
	}

	decoded, format, err := image.Decode(bytes.NewReader(stored))
	if err != nil {
		t.Fatalf("decode stored object: %v", err)
	}
	if format != "jpeg" {
		t.Fatalf("expected jpeg output, got %s", format)
	}
	opaque, ok := decoded.(interface{ Opaque() bool })
	if !ok || !opaque.Opaque() {
		t.Fatal("stored image still carries an alpha channel")
	}
}

func TestUploadImageDistinctKeysForSameSource(t *testing.T) {
	up, _ := newTestUploader()
	ctx := context.Background()
	raw := pngWithAlpha(t)

	first, err := up.UploadImage(ctx, raw)
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}
	second, err := up.UploadImage(ctx, raw)
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}
	if first == second {
		t.Fatalf("re-upload reused storage reference: %s", first)
	}
}

func TestUploadImageRejectsGarbage(t *testing.T) {
	up, _ := newTestUploader()

	_, err := up.UploadImage(context.Background(), []byte("definitely not an image"))
	if !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("expected ErrInvalidImage, got %v", err)
	}
}
