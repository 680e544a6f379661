package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/salon-admin/internal/httperr"
	"github.com/BruksfildServices01/salon-admin/internal/idgen"
)

const (
	DefaultMaxSide   = 512
	MaxUploadBytes   = 5 << 20
	MaxSourcePixels  = 40_000_000
	photoContentType = "image/webp"
)

var ErrInvalidImage = httperr.ErrBusiness("invalid_image")

// PhotoService normalizes profile photos to a bounded webp and stores them.
type PhotoService struct {
	store   Storage
	newID   idgen.Func
	maxSide int
	quality float32
}

func NewPhotoService(store Storage, newID idgen.Func) *PhotoService {
	return &PhotoService{
		store:   store,
		newID:   newID,
		maxSide: DefaultMaxSide,
		quality: 80,
	}
}

// UploadEmployeePhoto decodes a jpeg, png or webp image, shrinks it so the
// longest side is at most maxSide pixels and stores it as webp. Images whose
// header declares more than MaxSourcePixels are rejected before decoding.
func (p *PhotoService) UploadEmployeePhoto(ctx context.Context, employeeID string, r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	if len(raw) == 0 || len(raw) > MaxUploadBytes {
		return "", ErrInvalidImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return "", ErrInvalidImage
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxSourcePixels {
		return "", ErrInvalidImage
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", ErrInvalidImage
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, Fit(img, p.maxSide), &webp.Options{Quality: p.quality}); err != nil {
		return "", fmt.Errorf("encode photo: %w", err)
	}

	key := fmt.Sprintf("employees/%s/%s.webp", employeeID, p.newID())
	return p.store.Upload(ctx, key, photoContentType, out.Bytes())
}

// Fit scales img down, keeping its aspect ratio, until neither side exceeds
// maxSide. Smaller images are returned as they are.
func Fit(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}

	nw, nh := maxSide, maxSide
	if w > h {
		nh = max(1, h*maxSide/w)
	} else {
		nw = max(1, w*maxSide/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
