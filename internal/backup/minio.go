package backup

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/config"
)

// Client uploads snapshots of the booking collection to an S3-compatible
// bucket. Entirely optional: when no endpoint is configured the service
// runs without it and the backup endpoint reports unavailable.
type Client struct {
	mc     *minio.Client
	bucket string
}

// NewClient creates the MinIO client and ensures the bucket exists.
func NewClient(cfg config.BackupConfig) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("backup storage not configured")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	c := &Client{mc: mc, bucket: cfg.Bucket}
	// ensure bucket exists (idempotent)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
		exist, xerr := mc.BucketExists(ctx, c.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return c, nil
}

// UploadSnapshot stores the serialized collection under a timestamped key
// and returns that key.
func (c *Client) UploadSnapshot(ctx context.Context, data []byte) (string, error) {
	key := fmt.Sprintf("bookings-%s.json", time.Now().UTC().Format("20060102T150405"))
	_, err := c.mc.PutObject(ctx, c.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}
	return key, nil
}
