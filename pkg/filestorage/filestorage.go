package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StoredFile is what the photo store hands back: a stable URL path plus the
// identifier under which the object can be referenced later.
type StoredFile struct {
	URL      string
	PublicID string
}

// FileStorageInterface is the contract for the binary object store that keeps
// inspection photos.
type FileStorageInterface interface {
	Save(file io.Reader, originalFileName string, prefix string) (StoredFile, error)
}

type LocalFileStorage struct {
	basePath  string
	publicURL string
}

// NewLocalFileStorage stores files under basePath; publicURL is the URL prefix
// the HTTP server serves that directory from (e.g. "/uploads").
func NewLocalFileStorage(basePath, publicURL string) (FileStorageInterface, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0755); err != nil {
			return nil, fmt.Errorf("could not create storage directory: %w", err)
		}
	}
	return &LocalFileStorage{basePath: basePath, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

func (s *LocalFileStorage) Save(file io.Reader, originalFileName string, prefix string) (StoredFile, error) {
	ext := filepath.Ext(originalFileName)
	publicID := uuid.New().String()
	uniqueFileName := fmt.Sprintf("%s-%s%s", time.Now().Format("2006-01-02"), publicID, ext)

	// Dated subdirectories keep the photo tree browsable.
	datePath := filepath.Join(prefix, time.Now().Format("2006/01/02"))
	fullDirPath := filepath.Join(s.basePath, datePath)
	if err := os.MkdirAll(fullDirPath, 0755); err != nil {
		return StoredFile{}, err
	}

	dst, err := os.Create(filepath.Join(fullDirPath, uniqueFileName))
	if err != nil {
		return StoredFile{}, err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return StoredFile{}, err
	}

	relPath := filepath.ToSlash(filepath.Join(datePath, uniqueFileName))
	return StoredFile{
		URL:      s.publicURL + "/" + relPath,
		PublicID: publicID,
	}, nil
}
