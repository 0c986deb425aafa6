package main

import (
	"fmt"
	"net/http"
)

/*
 * Serve error data structure
 */
type ErrorCode int

const (
	/* Filesystem */
	NotFoundErr  ErrorCode = iota
	PathStatErr  ErrorCode = iota
	FileOpenErr  ErrorCode = iota
	DirListErr   ErrorCode = iota
	InodeTypeErr ErrorCode = iota

	/* Request parsing */
	DecodeErr ErrorCode = iota

	/* Response writing */
	ResponseWriteErr ErrorCode = iota
)

type ServeError struct {
	Code ErrorCode
	Err  error
}

func (e *ServeError) Error() string {
	var str string
	switch e.Code {
	case NotFoundErr:
		str = "path not found"
	case PathStatErr:
		str = "path stat fail"
	case FileOpenErr:
		str = "file open fail"
	case DirListErr:
		str = "directory read fail"
	case InodeTypeErr:
		str = "unsupported inode type"

	case DecodeErr:
		str = "request path decode fail"

	case ResponseWriteErr:
		str = "response write fail"

	default:
		str = "unknown"
	}

	if e.Err != nil {
		return fmt.Sprintf("%s (%s)", str, e.Err.Error())
	} else {
		return str
	}
}

/* Map error code to terminal HTTP status code */
func (e *ServeError) Status() int {
	switch e.Code {
	case NotFoundErr:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

/* Map error code to canonical plain-text response body */
func (e *ServeError) Body() string {
	switch e.Code {
	case NotFoundErr:
		return ResponseNotFound
	case DirListErr:
		return ResponseCannotList
	case FileOpenErr:
		return ResponseCannotRead
	default:
		/* Decode, path stat and inode type failures all read the same to a client */
		return ResponseCannotOpen
	}
}
