package domain

import "errors"

// ErrUnsafeName is an error thrown when a filename fails the whitelist
var ErrUnsafeName = errors.New("invalid filename")

// ErrFileNotFound is an error thrown when a stored file does not exist
var ErrFileNotFound = errors.New("file not found")

// ErrNoFilesStored is an error thrown when a submission carried no file parts
var ErrNoFilesStored = errors.New("no files detected")
