// Package s3 guarda una copia de los logos subidos en un bucket S3 compatible (AWS o MinIO).
package s3

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/chipaflow-api/internal/application/settings"
	"github.com/jhoicas/chipaflow-api/pkg/config"
)

var _ settings.LogoArchiver = (*LogoArchiver)(nil)

// keyPrefix prefijo de los objetos dentro del bucket.
const keyPrefix = "logos/"

// LogoArchiver implementa settings.LogoArchiver con PutObject.
type LogoArchiver struct {
	client *s3.Client
	bucket string
	now    func() time.Time
}

// NewLogoArchiver carga credenciales de la cadena por defecto de AWS (env, perfil, IMDS).
func NewLogoArchiver(ctx context.Context, cfg config.LogoConfig) (*LogoArchiver, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3: bucket requerido")
	}
	region := cfg.S3Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("s3: cargar configuración AWS: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3PathStyle
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})
	return newLogoArchiver(client, cfg.S3Bucket), nil
}

func newLogoArchiver(client *s3.Client, bucket string) *LogoArchiver {
	return &LogoArchiver{client: client, bucket: bucket, now: time.Now}
}

// Archive sube los bytes bajo logos/<unix>-<nombre>.
func (a *LogoArchiver) Archive(ctx context.Context, filename, contentType string, data []byte) error {
	key := objectKey(a.now(), filename)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata:    map[string]string{"original-name": filename},
	}
	if _, err := a.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("s3: put %s: %w", key, err)
	}
	return nil
}

func objectKey(t time.Time, filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "" || name == "." || name == "/" {
		name = "logo"
	}
	name = strings.Map(func(r rune) rune {
		if r == ' ' {
			return '-'
		}
		return r
	}, name)
	return fmt.Sprintf("%s%d-%s", keyPrefix, t.Unix(), name)
}
