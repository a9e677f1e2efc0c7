package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"

	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/inspiration/internal/model"
)

// Source selects where a run takes its photo from
type Source int

const (
	// SourceRemote tries the photo service first
	SourceRemote Source = iota
	// SourceLocal goes straight to the bundled backgrounds
	SourceLocal
)

func (s Source) String() string {
	if s == SourceLocal {
		return "local"
	}
	return "remote"
}

// ParseSource maps a launch-source setting to a Source
func ParseSource(s string) Source {
	if s == "local" {
		return SourceLocal
	}
	return SourceRemote
}

// ImageChain acquires one photo: remote metadata, then photo and avatar
// binaries, falling back to a bundled background on any failure.
type ImageChain struct {
	photos   PhotoSource
	binaries BinaryFetcher
	local    LocalImages
	creds    Credentials
	log      *slog.Logger
}

// NewImageChain creates an ImageChain
func NewImageChain(photos PhotoSource, binaries BinaryFetcher, local LocalImages, creds Credentials, logger *slog.Logger) *ImageChain {
	return &ImageChain{
		photos:   photos,
		binaries: binaries,
		local:    local,
		creds:    creds,
		log:      logger.With("component", "images"),
	}
}

// Acquire returns the photo for a run. A nil photo with a nil error is the
// no-image state. The error is non-nil only when ctx was cancelled.
func (c *ImageChain) Acquire(ctx context.Context, src Source) (*model.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if src == SourceLocal {
		return c.fallback(ctx)
	}

	key := c.creds.Credential(model.CredentialPhotoService)
	if !key.IsConfigured() {
		c.log.InfoContext(ctx, "photo service key not set, using local background")
		return c.fallback(ctx)
	}

	photo, err := c.remote(ctx, key.Value)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.log.WarnContext(ctx, "remote photo failed, using local background", slog.String("error", err.Error()))
		return c.fallback(ctx)
	}
	return photo, nil
}

func (c *ImageChain) remote(ctx context.Context, key string) (*model.Photo, error) {
	meta, err := c.photos.RandomPhoto(ctx, key)
	if err != nil {
		return nil, err
	}

	var imageData, avatar []byte
	var avatarErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := c.binaries.FetchBinary(gctx, "photo image", meta.ImageURL)
		if err != nil {
			return err
		}
		if err := checkDecodable(data); err != nil {
			return fmt.Errorf("photo image: %w", err)
		}
		imageData = data
		return nil
	})
	g.Go(func() error {
		data, err := c.binaries.FetchBinary(gctx, "photo avatar", meta.AvatarURL)
		if err == nil {
			err = checkDecodable(data)
		}
		if err != nil {
			avatarErr = err
			return nil
		}
		avatar = data
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if avatarErr != nil {
		c.log.WarnContext(ctx, "avatar unavailable", slog.String("author", meta.Author), slog.String("error", avatarErr.Error()))
	}

	return model.NewRemotePhoto(imageData, meta.Title, meta.Author, avatar, meta.ImageURL)
}

func (c *ImageChain) fallback(ctx context.Context) (*model.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, data, err := c.local.Random()
	if err != nil {
		c.log.ErrorContext(ctx, "no local background available", slog.String("error", err.Error()))
		return nil, nil
	}
	return model.NewLocalPhoto(data, name), nil
}

func checkDecodable(data []byte) error {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("undecodable image: %w", err)
	}
	return nil
}
