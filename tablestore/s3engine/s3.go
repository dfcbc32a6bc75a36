package s3engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/aiswo/librarydesk/tablestore"
)

const (
	engineName     = "s3"
	objectSuffix   = ".csv"
	csvContentType = "text/csv"
)

// Client is the subset of *s3.Client the Backend needs.
type Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Backend stores each table as one CSV object.
type Backend struct {
	client          Client
	bucket          string
	prefix          string
	instrumentation tablestore.Instrumentation
}

// NewBackend creates a Backend on top of an existing client.
func NewBackend(client Client, bucket string, options ...Option) (Backend, error) {
	if client == nil {
		return Backend{}, ErrNilClient
	}

	if bucket == "" {
		return Backend{}, ErrEmptyBucket
	}

	b := Backend{
		client:          client,
		bucket:          bucket,
		instrumentation: tablestore.Instrumentation{Engine: engineName},
	}

	for _, option := range options {
		if err := option(&b); err != nil {
			return Backend{}, err
		}
	}

	return b, nil
}

// NewBackendFromRegion loads the default AWS configuration for region and creates a Backend with a new client.
func NewBackendFromRegion(ctx context.Context, region, bucket string, options ...Option) (Backend, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return Backend{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewBackend(s3.NewFromConfig(cfg), bucket, options...)
}

// Key returns the object key used for the named table.
func (b Backend) Key(name tablestore.TableNameString) (string, error) {
	if name == "" {
		return "", tablestore.ErrEmptyTableName
	}

	if strings.Contains(name, "/") {
		return "", fmt.Errorf("%w: %q", tablestore.ErrInvalidTableName, name)
	}

	return b.prefix + name + objectSuffix, nil
}

// Load downloads and decodes the named table.
func (b Backend) Load(ctx context.Context, name tablestore.TableNameString) (tablestore.Table, error) {
	ctx, obs := b.instrumentation.Start(ctx, tablestore.OperationLoad, name)

	table, err := b.load(ctx, name)
	obs.Finish(table.Len(), err)

	return table, err
}

// Save encodes and uploads the whole table, replacing any previous object.
func (b Backend) Save(ctx context.Context, name tablestore.TableNameString, table tablestore.Table) error {
	ctx, obs := b.instrumentation.Start(ctx, tablestore.OperationSave, name)

	err := b.save(ctx, name, table)
	obs.Finish(table.Len(), err)

	return err
}

func (b Backend) load(ctx context.Context, name string) (tablestore.Table, error) {
	key, err := b.Key(name)
	if err != nil {
		return tablestore.Table{}, err
	}

	result, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return tablestore.Table{}, fmt.Errorf("%w: %s", tablestore.ErrTableNotFound, key)
		}

		return tablestore.Table{}, fmt.Errorf("failed to retrieve %s from S3: %w", key, err)
	}
	defer result.Body.Close() //nolint:errcheck

	table, err := tablestore.DecodeCSV(result.Body)
	if err != nil {
		return tablestore.Table{}, fmt.Errorf("object %s: %w", key, err)
	}

	return table, nil
}

func (b Backend) save(ctx context.Context, name string, table tablestore.Table) error {
	key, err := b.Key(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = tablestore.EncodeCSV(&buf, table); err != nil {
		return err
	}

	_, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(csvContentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}

	return nil
}

var _ tablestore.Backend = Backend{}
