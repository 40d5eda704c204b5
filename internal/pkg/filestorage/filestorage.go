package filestorage

import (
	"mime/multipart"
)

// Storage defines the interface for stored upload operations.
type Storage interface {
	// SaveFile saves an uploaded file under the given subdirectory and
	// returns the accessible path for it.
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file. Deleting a missing
	// file is not an error.
	DeleteFile(filePath string) error
}
