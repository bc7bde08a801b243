package asset

import (
	"time"

	"github.com/google/uuid"
)

// Asset is the metadata record for one stored blob. URL is the write-once
// storage locator (object key), not a fetchable address.
type Asset struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mimeType"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ListedAsset augments an asset with a freshly signed, time-limited download
// URL. DownloadURL is null when signing failed for that record.
type ListedAsset struct {
	Asset
	DownloadURL *string `json:"downloadUrl"`
}
