// Package storage reads blobs from Azure Blob Storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// System reads blobs from a single container.
type System interface {
	// Download returns the full content of the blob at key.
	// Returns ErrNotFound if the blob does not exist and ErrTooLarge if it
	// exceeds the configured maximum.
	Download(ctx context.Context, key string) ([]byte, error)
	// Exists reports whether a blob exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)
}

type azure struct {
	client    *azblob.Client
	container string
	maxBytes  int64
	logger    *slog.Logger
}

// New creates a storage system from the given configuration.
// A connection string takes precedence over an account URL. No request is
// made until the first Download or Exists.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}

	return &azure{
		client:    client,
		container: cfg.ContainerName,
		maxBytes:  cfg.MaxDownloadBytes(),
		logger:    logger.With("system", "storage"),
	}, nil
}

func newClient(cfg *Config) (*azblob.Client, error) {
	switch {
	case cfg.ConnectionString != "":
		client, err := azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
		if err != nil {
			return nil, fmt.Errorf("create storage client: %w", err)
		}
		return client, nil
	case cfg.AccountURL != "":
		cred, err := defaultCredential()
		if err != nil {
			return nil, fmt.Errorf("create azure credential: %w", err)
		}
		client, err := azblob.NewClient(cfg.AccountURL, cred, nil)
		if err != nil {
			return nil, fmt.Errorf("create storage client: %w", err)
		}
		return client, nil
	default:
		return nil, ErrNotConfigured
	}
}

func defaultCredential() (azcore.TokenCredential, error) {
	return azidentity.NewDefaultAzureCredential(nil)
}

func (a *azure) Download(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	resp, err := a.client.DownloadStream(ctx, a.container, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("download blob %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.ContentLength != nil && *resp.ContentLength > a.maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, key, *resp.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, a.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", key, err)
	}
	if int64(len(data)) > a.maxBytes {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, key)
	}

	a.logger.Info("blob downloaded", "container", a.container, "key", key, "bytes", len(data))
	return data, nil
}

func (a *azure) Exists(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	blobClient := a.client.
		ServiceClient().
		NewContainerClient(a.container).
		NewBlobClient(key)

	_, err := blobClient.GetProperties(ctx, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check blob existence %s: %w", key, err)
	}

	return true, nil
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, "..") {
		return ErrInvalidKey
	}
	return nil
}
