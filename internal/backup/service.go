package backup

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/semprecheioapp/semprecheio-api/internal/config"
	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

// Uploader ships a finished export somewhere durable.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte) (string, error)
}

// Service runs tenant exports and hands them to the configured uploader.
// With no uploader the export is still produced and returned inline.
type Service struct {
	store    storage.Storage
	uploader Uploader
	log      *zap.Logger
}

func NewService(store storage.Storage, uploader Uploader, log *zap.Logger) *Service {
	return &Service{store: store, uploader: uploader, log: log}
}

type Result struct {
	Record *models.Backup `json:"record"`
	Key    string         `json:"key"`
	SQL    string         `json:"sql,omitempty"`
}

func (s *Service) Run(ctx context.Context, clientID string) (*Result, error) {
	data, err := Export(ctx, s.store, clientID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("backups/%s/%s.sql", clientID, time.Now().UTC().Format("20060102T150405Z"))
	record := &models.Backup{
		ClientID: clientID,
		Status:   "completed",
		Size:     int64(len(data)),
	}
	result := &Result{Record: record, Key: key}

	if s.uploader == nil {
		result.SQL = string(data)
	} else {
		location, err := s.uploader.Upload(ctx, key, data)
		if err != nil {
			s.log.Error("backup upload failed", zap.String("client_id", clientID), zap.Error(err))
			return nil, err
		}
		record.Location = location
	}

	if err := s.store.CreateBackup(ctx, record); err != nil {
		return nil, err
	}

	s.log.Info("backup completed",
		zap.String("client_id", clientID),
		zap.String("backup_id", record.ID),
		zap.Int64("size", record.Size))
	return result, nil
}

func (s *Service) History(ctx context.Context, clientID string) ([]models.Backup, error) {
	return s.store.ListBackups(ctx, clientID)
}

// ---------- S3 ----------

type S3Uploader struct {
	client *s3.Client
	bucket string
}

// NewS3Uploader returns nil when no bucket is configured, which keeps
// backups local-only.
func NewS3Uploader(cfg *config.Config) *S3Uploader {
	if cfg.BackupBucket == "" {
		return nil
	}

	opts := s3.Options{Region: cfg.AWSRegion}
	if cfg.AWSAccessKeyID != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")
	}

	return &S3Uploader{
		client: s3.New(opts),
		bucket: cfg.BackupBucket,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, key string, body []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/sql"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return fmt.Sprintf("s3://%s/%s", u.bucket, key), nil
}
