package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"
)

// Photo upload rules. The camera apps on site produce jpeg/png/webp; anything
// else is rejected before it ever reaches storage.
var allowedPhotoMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
}

// ValidateInspectionPhoto checks size against maxSizeMB and sniffs the real
// content type from the first 512 bytes. The declared Content-Type header is
// not trusted.
func ValidateInspectionPhoto(fileHeader *multipart.FileHeader, file io.ReadSeeker, maxSizeMB int) error {
	if maxSizeMB > 0 {
		maxSizeBytes := int64(maxSizeMB) * 1024 * 1024
		if fileHeader.Size > maxSizeBytes {
			return fmt.Errorf("file size (%.2f MB) exceeds the %d MB limit", float64(fileHeader.Size)/1024/1024, maxSizeMB)
		}
	}

	buffer := make([]byte, 512)
	if _, err := file.Read(buffer); err != nil && err != io.EOF {
		return fmt.Errorf("could not read file")
	}

	// Rewind so the caller can store the full file.
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("could not process file")
	}

	mimeType := http.DetectContentType(buffer)
	if !slices.Contains(allowedPhotoMimeTypes, mimeType) {
		return fmt.Errorf("unsupported file format: %s", mimeType)
	}

	return nil
}
