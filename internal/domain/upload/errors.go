package upload

import "errors"

var (
	ErrInvalidImage = errors.New("file is not a valid image")
	ErrFileTooLarge = errors.New("file exceeds the upload size limit")
	ErrStoreFailed  = errors.New("blob store rejected the upload")
)
