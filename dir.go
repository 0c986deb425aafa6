package main

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

/* Directory entry kinds as rendered into a listing */
type EntryKind int

const (
	EntryParent    EntryKind = iota
	EntryDirectory EntryKind = iota
	EntryFile      EntryKind = iota
)

type DirEntry struct {
	Name string
	Kind EntryKind
}

func (worker *Worker) ServeDirectory(requestPath *RequestPath) *ServeError {
	cache := worker.Config.ListingCache

	/* Try the listing cache first if one is configured */
	if cache != nil {
		if body, ok := cache.Fetch(requestPath.Absolute()); ok {
			return worker.SendListing(body, true)
		}
	}

	body, serveErr := buildListing(worker.Config, requestPath)
	if serveErr != nil {
		return serveErr
	}

	if cache != nil {
		cache.Put(requestPath.Absolute(), body)
	}

	return worker.SendListing(body, false)
}

func (worker *Worker) SendListing(body []byte, cached bool) *ServeError {
	header := worker.Request.Writer.Header()
	header.Set(ContentTypeHeader, ContentTypeHtml)
	header.Set(ContentLengthHeader, strconv.Itoa(len(body)))
	if worker.Config.DisableCache {
		setCacheBustingHeaders(header)
	}
	worker.Request.Writer.WriteHeader(http.StatusOK)

	if _, err := worker.Request.Writer.Write(body); err != nil {
		return &ServeError{ResponseWriteErr, err}
	}

	if cached {
		worker.Log("Served listing (cached): %s\n", worker.Request.Path.Selector())
	} else {
		worker.Log("Served listing: %s\n", worker.Request.Path.Selector())
	}
	return nil
}

/* Build the complete HTML listing document for a directory.
 * Children are classified by stat, partitioned into directories
 * and files, each group sorted byte-wise ascending, directories
 * rendered first. A child that fails to stat is left out of the
 * listing rather than failing the whole page.
 */
func buildListing(config *ServerConfig, requestPath *RequestPath) ([]byte, *ServeError) {
	children, err := os.ReadDir(requestPath.Absolute())
	if err != nil {
		config.LogSystemError("Failed to enumerate dir %s: %s\n", requestPath.Absolute(), err.Error())
		return nil, &ServeError{DirListErr, err}
	}

	dirNames := make([]string, 0)
	fileNames := make([]string, 0)

	for _, child := range children {
		if isRestrictedFile(config.RestrictedFiles, child.Name()) {
			continue
		}

		/* Stat rather than lstat so a symlinked child classifies as its
		 * target type, same as the dispatcher does when it is requested
		 * directly.
		 */
		info, err := os.Stat(filepath.Join(requestPath.Absolute(), child.Name()))
		if err != nil {
			/* Dangling link, or entry vanished between readdir and stat.
			 * Leave it out.
			 */
			config.LogSystemError("Failed to stat %s in %s: %s\n", child.Name(), requestPath.Absolute(), err.Error())
			continue
		}

		/* Handle file, directory or ignore others */
		switch {
		case info.Mode()&os.ModeDir != 0:
			dirNames = append(dirNames, child.Name())

		case info.Mode()&os.ModeType == 0:
			fileNames = append(fileNames, child.Name())

		default:
			/* Ignore */
		}
	}

	sort.Strings(dirNames)
	sort.Strings(fileNames)

	entries := make([]DirEntry, 0, len(dirNames)+len(fileNames)+1)

	/* Synthetic 'up' entry unless listing the root itself */
	if !requestPath.IsRoot() {
		entries = append(entries, DirEntry{"..", EntryParent})
	}

	for _, name := range dirNames {
		entries = append(entries, DirEntry{name, EntryDirectory})
	}
	for _, name := range fileNames {
		entries = append(entries, DirEntry{name, EntryFile})
	}

	return renderListingPage(requestPath.Selector(), entries), nil
}
