package main

const (
	HttporVersion = "Httpor 1.0.0"

	/* Response bodies */
	ResponseNotFound   = "Page not found."
	ResponseCannotOpen = "Cannot open this path."
	ResponseCannotList = "Cannot read directory."
	ResponseCannotRead = "Cannot read file."

	/* Header names */
	ContentTypeHeader   = "Content-Type"
	ContentLengthHeader = "Content-Length"
	CacheControlHeader  = "Cache-Control"
	PragmaHeader        = "Pragma"
	ExpiresHeader       = "Expires"
	LocationHeader      = "Location"

	/* Header values */
	ContentTypeHtml     = "text/html; charset=utf-8"
	ContentTypePlain    = "text/plain; charset=utf-8"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"
	PragmaNoCache       = "no-cache"
	ExpiresImmediately  = "0"
	FallbackContentType = "application/octet-stream"

	/* Read buffer size used when streaming file contents */
	FileReadBufSize = 8192
)
