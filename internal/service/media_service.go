package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/minio"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

const (
	maxImageSize   = 5 << 20
	thumbnailWidth = 400
)

var allowedImageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type MediaService interface {
	UploadModelImage(ctx context.Context, userID, modelID uint64, isAdmin bool, file *multipart.FileHeader) (string, error)
	UploadAvatar(ctx context.Context, userID uint64, file *multipart.FileHeader) (string, error)
}

type mediaServiceImpl struct {
	modelRepo repository.ModelRepo
	userRepo  repository.UserRepo
}

func NewMediaService(modelRepo repository.ModelRepo, userRepo repository.UserRepo) MediaService {
	return &mediaServiceImpl{
		modelRepo: modelRepo,
		userRepo:  userRepo,
	}
}

// UploadModelImage stores a resized model image and records its public URL.
func (s *mediaServiceImpl) UploadModelImage(ctx context.Context, userID, modelID uint64, isAdmin bool, file *multipart.FileHeader) (string, error) {
	m, err := s.modelRepo.GetModelByID(ctx, modelID)
	if err != nil {
		return "", err
	}
	if m == nil {
		return "", ErrModelNotFound
	}
	if m.ContributorID != userID && !isAdmin {
		return "", ErrForbidden
	}

	objectName := fmt.Sprintf("models/%d/%s", modelID, uuid.NewString()+".jpg")
	url, err := s.storeImage(ctx, file, objectName)
	if err != nil {
		return "", err
	}

	if err := s.modelRepo.UpdateImageURL(ctx, modelID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *mediaServiceImpl) UploadAvatar(ctx context.Context, userID uint64, file *multipart.FileHeader) (string, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	objectName := fmt.Sprintf("avatars/%d/%s", userID, uuid.NewString()+".jpg")
	url, err := s.storeImage(ctx, file, objectName)
	if err != nil {
		return "", err
	}

	user.AvatarURL = &url
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return url, nil
}

// storeImage validates, downscales to the thumbnail width, re-encodes as
// JPEG and uploads. Validation failures map to ErrParamInvalid.
func (s *mediaServiceImpl) storeImage(ctx context.Context, file *multipart.FileHeader, objectName string) (string, error) {
	if file.Size <= 0 || file.Size > maxImageSize {
		return "", ErrParamInvalid
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", ErrParamInvalid
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	img, err := imaging.Decode(io.LimitReader(src, maxImageSize), imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrParamInvalid
	}

	if img.Bounds().Dx() > thumbnailWidth {
		img = imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return "", err
	}

	key, err := minio.UploadFile(ctx, objectName, &buf, int64(buf.Len()), "image/jpeg")
	if err != nil {
		return "", err
	}
	return minio.GetPublicURL(key), nil
}
