package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

var ErrInvalidImage = errors.New("unsupported or corrupt image data")

// Uploader writes images into one publicly readable bucket and hands back
// their public URLs.
type Uploader struct {
	bucket     *blob.Bucket
	publicBase string
}

var Default *Uploader

// Init opens the bucket named by STORAGE_BUCKET_URL (s3://... in production,
// file://... for local runs) and wires the package-level uploader.
func Init() error {
	bucket, err := blob.OpenBucket(context.Background(), os.Getenv("STORAGE_BUCKET_URL"))
	if err != nil {
		return err
	}
	Default = New(bucket, os.Getenv("STORAGE_PUBLIC_BASE_URL"))
	return nil
}

func New(bucket *blob.Bucket, publicBase string) *Uploader {
	return &Uploader{bucket: bucket, publicBase: strings.TrimRight(publicBase, "/")}
}

// UploadImage decodes any common raster format, re-encodes it as JPEG and
// stores it under a fresh random key. JPEG carries no alpha channel, so any
// transparency in the source is dropped at encode time. Every call gets its
// own key; identical uploads are stored twice.
func (u *Uploader) UploadImage(ctx context.Context, raw []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", ErrInvalidImage
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return "", err
	}

	key := strings.ReplaceAll(uuid.New().String(), "-", "") + ".jpg"
	w, err := u.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: "image/jpeg"})
	if err != nil {
		return "", err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return u.publicBase + "/" + key, nil
}

// Key strips the public base from a URL produced by UploadImage.
func (u *Uploader) Key(publicURL string) string {
	return strings.TrimPrefix(strings.TrimPrefix(publicURL, u.publicBase), "/")
}
