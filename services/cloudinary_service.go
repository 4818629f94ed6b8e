package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryService(cloudName, apiKey, apiSecret, folder string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld, folder: folder}, nil
}

// UploadImage uploads a single image and returns its secure URL and public ID.
func (s *CloudinaryService) UploadImage(ctx context.Context, file io.Reader, filename string) (string, string, error) {
	// Use pointer booleans as required by the cloudinary SDK
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         s.folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)); name != "" && name != "." {
		params.PublicID = name
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, result.PublicID, nil
}

// DeleteImage deletes an image using its public ID
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
