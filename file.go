package main

import (
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
)

/* Stream a regular file back to the client. The caller already
 * stat'ed the path, so headers can carry the final size before a
 * single content byte is written. The descriptor is released on
 * every exit path. Contents are copied through a bounded buffer,
 * never loaded whole into memory.
 */
func (worker *Worker) ServeFile(requestPath *RequestPath, stat os.FileInfo) *ServeError {
	fd, err := os.Open(requestPath.Absolute())
	if err != nil {
		return &ServeError{FileOpenErr, err}
	}
	defer fd.Close()

	contentType := worker.Config.MimeTypes.Lookup(requestPath.Absolute())

	header := worker.Request.Writer.Header()
	if contentType != "" {
		header.Set(ContentTypeHeader, contentType)
	}
	header.Set(ContentLengthHeader, strconv.FormatInt(stat.Size(), 10))
	if worker.Config.DisableCache {
		setCacheBustingHeaders(header)
	}
	worker.Request.Writer.WriteHeader(http.StatusOK)

	/* Status is on the wire now, a failure past this point cannot
	 * become a 500. Copy in chunks until done or the connection dies.
	 */
	buf := make([]byte, FileReadBufSize)
	sent, err := io.CopyBuffer(worker.Request.Writer, fd, buf)
	if err != nil {
		return &ServeError{ResponseWriteErr, err}
	}

	worker.Log("Served file: %s (%s)\n", requestPath.Selector(), humanize.Bytes(uint64(sent)))
	return nil
}

/* Headers that force clients and intermediaries to revalidate on
 * every request.
 */
func setCacheBustingHeaders(header http.Header) {
	header.Set(CacheControlHeader, CacheControlNoCache)
	header.Set(PragmaHeader, PragmaNoCache)
	header.Set(ExpiresHeader, ExpiresImmediately)
}
