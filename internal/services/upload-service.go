package services

import (
	"mime/multipart"

	"fleet-system/internal/dto"
	apperrors "fleet-system/pkg/errors"
	"fleet-system/pkg/filestorage"
	"fleet-system/pkg/validation"

	"go.uber.org/zap"
)

type UploadServiceInterface interface {
	UploadInspectionPhoto(fileHeader *multipart.FileHeader) (*dto.UploadedPhotoDTO, error)
}

// UploadService stores inspection photos ahead of finalization; the returned
// URL and public id are what the inspection payload later references.
type UploadService struct {
	storage        filestorage.FileStorageInterface
	maxPhotoSizeMB int
	logger         *zap.Logger
}

func NewUploadService(storage filestorage.FileStorageInterface, maxPhotoSizeMB int, logger *zap.Logger) UploadServiceInterface {
	return &UploadService{storage: storage, maxPhotoSizeMB: maxPhotoSizeMB, logger: logger}
}

func (s *UploadService) UploadInspectionPhoto(fileHeader *multipart.FileHeader) (*dto.UploadedPhotoDTO, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if err := validation.ValidateInspectionPhoto(fileHeader, file, s.maxPhotoSizeMB); err != nil {
		return nil, apperrors.NewInvalidInputError("%s", err.Error())
	}

	stored, err := s.storage.Save(file, fileHeader.Filename, "inspecciones")
	if err != nil {
		return nil, err
	}

	s.logger.Info("inspection photo stored",
		zap.String("public_id", stored.PublicID),
		zap.Int64("size_bytes", fileHeader.Size),
	)

	return &dto.UploadedPhotoDTO{URL: stored.URL, PublicID: stored.PublicID}, nil
}
