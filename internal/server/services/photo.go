package services

import (
	"context"
	"database/sql"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"portrussell/internal/common"
	sc "portrussell/internal/server/config"
	"portrussell/internal/server/repositories/repomanager"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// allowed photo extensions, lower-case
var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// PhotoService stores user profile photos in an S3-compatible backend via
// presigned URLs. The server never proxies photo bytes.
type PhotoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewPhotoService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *PhotoService {
	return &PhotoService{db: db, repomanager: m, config: cfg}
}

// makePhotoKey builds the object key for an uploaded photo:
// photos/<uuid>/<DD-MM-YYYY>_<lowercased name with underscores><ext>.
// The extension must be jpg, jpeg or png.
func makePhotoKey(filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if !photoExtensions[ext] {
		return "", common.ErrorValidation
	}

	name := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	name = strings.Join(strings.Fields(strings.ToLower(name)), "_")
	if name == "" {
		return "", common.ErrorValidation
	}

	d := time.Now()
	return fmt.Sprintf("photos/%v/%02d-%02d-%d_%s%s", uuid.New(), d.Day(), int(d.Month()), d.Year(), name, ext), nil
}

func (s *PhotoService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// PresignUpload returns the object key and a presigned PUT URL for the
// user's new photo, and records the key on the user record.
func (s *PhotoService) PresignUpload(ctx context.Context, email, filename string) (string, string, error) {
	repo := s.repomanager.Users(s.db)
	if _, err := repo.GetByEmail(ctx, email); err != nil {
		return "", "", err
	}

	key, err := makePhotoKey(filename)
	if err != nil {
		return "", "", err
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	if err := repo.UpdatePhotoKey(ctx, email, key); err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// PresignDownload returns a presigned GET URL for the user's stored photo.
// Users without a photo yield common.ErrorNotFound.
func (s *PhotoService) PresignDownload(ctx context.Context, email string) (string, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user.PhotoKey == "" {
		return "", common.ErrorNotFound
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &user.PhotoKey,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
