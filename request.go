package main

import (
	"net/http"
	"net/url"
	"path"
	"strings"
)

/* RequestPath:
 * Holds the root directory, the decoded root-relative request
 * path and the joined absolute path, so both filesystem reads
 * and client-facing output have their preferred form at hand.
 */
type RequestPath struct {
	Root string
	Rel  string
	Abs  string
}

func NewRequestPath(rootDir, relPath string) *RequestPath {
	return &RequestPath{rootDir, relPath, path.Join(rootDir, relPath)}
}

func (rp *RequestPath) RootDir() string {
	return rp.Root
}

func (rp *RequestPath) Relative() string {
	return rp.Rel
}

func (rp *RequestPath) Absolute() string {
	return rp.Abs
}

/* Client-facing form of the request path, always '/' prefixed */
func (rp *RequestPath) Selector() string {
	return "/" + rp.Rel
}

func (rp *RequestPath) IsRoot() bool {
	return rp.Rel == ""
}

/* Resolve a raw URL path into a RequestPath under the supplied root.
 * Percent-decode first, then map literal '+' to space (legacy
 * form-encoding compatibility), then strip ALL leading '/' to force
 * the path root-relative before joining. path.Join collapses dot
 * segments but nothing here confirms the result stays under the
 * root -- preserved as-is from the behavior this server replicates,
 * a known limitation for untrusted networks.
 */
func resolveRequestPath(rootDir, rawPath string) (*RequestPath, *ServeError) {
	decoded, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, &ServeError{DecodeErr, err}
	}

	decoded = strings.ReplaceAll(decoded, "+", " ")
	decoded = strings.TrimLeft(decoded, "/")

	return NewRequestPath(rootDir, decoded), nil
}

/* Request:
 * Per-request transient state carried through the serve pipeline.
 * Created at request entry, discarded at response completion,
 * never shared across requests.
 */
type Request struct {
	ID      string
	Client  string
	RawPath string
	Path    *RequestPath
	Writer  http.ResponseWriter
}
