package asset

import "errors"

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrFileRequired  = errors.New("file is required")
)
