package storage

import "errors"

var (
	ErrItemNotFound = errors.New("gallery item not found")
	ErrItemExists   = errors.New("gallery item already exists")
)

var (
	ErrFileTooLarge = errors.New("file size exceeds limit")
	ErrFileNotFound = errors.New("file not found")
)
