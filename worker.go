package main

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

/* Server:
 * Single http.Handler dispatching every inbound request to its
 * own Worker. Any method is treated as a path lookup, there is
 * no method differentiation.
 */
type Server struct {
	Config *ServerConfig
}

func NewServer(config *ServerConfig) *Server {
	return &Server{config}
}

func (s *Server) ServeHTTP(writer http.ResponseWriter, httpRequest *http.Request) {
	NewWorker(s.Config, writer, httpRequest).Serve()
}

/* Worker:
 * Owns the processing flow of a single request: resolve path,
 * classify inode, then hand over to the directory lister or the
 * file streamer. Every terminal branch writes exactly one
 * response.
 */
type Worker struct {
	Config  *ServerConfig
	Request *Request
}

func NewWorker(config *ServerConfig, writer http.ResponseWriter, httpRequest *http.Request) *Worker {
	clientIp, _, err := net.SplitHostPort(httpRequest.RemoteAddr)
	if err != nil {
		clientIp = httpRequest.RemoteAddr
	}

	return &Worker{
		config,
		&Request{
			ID:      uuid.NewString(),
			Client:  clientIp,
			RawPath: httpRequest.URL.EscapedPath(),
			Writer:  writer,
		},
	}
}

func (worker *Worker) Serve() {
	serveErr := worker.Respond()
	if serveErr == nil {
		return
	}

	if serveErr.Code == ResponseWriteErr {
		/* Headers already committed, the wire response cannot change.
		 * Log (when asked to) and let the connection terminate short.
		 */
		if worker.Config.DebugLogging {
			worker.LogError("Mid-stream failure: %s\n", serveErr.Error())
		}
		return
	}

	worker.SendError(serveErr)
}

func (worker *Worker) Respond() *ServeError {
	/* Resolve the raw request path under the server root */
	requestPath, serveErr := resolveRequestPath(worker.Config.RootDir, worker.Request.RawPath)
	if serveErr != nil {
		return serveErr
	}
	worker.Request.Path = requestPath

	if worker.Config.DebugLogging {
		worker.Log("Request: %s -> %s\n", worker.Request.RawPath, requestPath.Absolute())
	}

	/* Pre-flight stat, captures size and weeds out missing paths early */
	stat, err := os.Stat(requestPath.Absolute())
	if err != nil {
		if os.IsNotExist(err) {
			return &ServeError{NotFoundErr, err}
		}
		return &ServeError{PathStatErr, err}
	}

	/* Classify inode and delegate */
	switch {
	case stat.Mode()&os.ModeDir != 0:
		/* Listing links are relative, without the trailing slash a
		 * browser would resolve them against the parent.
		 */
		if worker.Request.RawPath != "" && !strings.HasSuffix(worker.Request.RawPath, "/") {
			worker.SendRedirect(worker.Request.RawPath + "/")
			return nil
		}
		return worker.ServeDirectory(requestPath)

	case stat.Mode()&os.ModeType == 0:
		return worker.ServeFile(requestPath, stat)

	default:
		/* Socket, device, fifo... nothing we serve */
		return &ServeError{InodeTypeErr, nil}
	}
}

/* Permanently redirect the client, used to canonicalize directory
 * requests onto their trailing-slash form.
 */
func (worker *Worker) SendRedirect(location string) {
	worker.Log("Redirecting to %s\n", location)

	worker.Request.Writer.Header().Set(LocationHeader, location)
	worker.Request.Writer.WriteHeader(http.StatusMovedPermanently)
}

/* Write a terminal error response. Only ever called before any
 * response bytes have been committed.
 */
func (worker *Worker) SendError(serveErr *ServeError) {
	worker.LogError("Serve failed: %s\n", serveErr.Error())

	body := serveErr.Body()
	header := worker.Request.Writer.Header()
	header.Set(ContentTypeHeader, ContentTypePlain)
	header.Set(ContentLengthHeader, strconv.Itoa(len(body)))
	worker.Request.Writer.WriteHeader(serveErr.Status())
	worker.Request.Writer.Write([]byte(body))
}

func (worker *Worker) Log(format string, args ...interface{}) {
	worker.Config.AccLog.Info("["+worker.Request.ID+"] ("+worker.Request.Client+") ", format, args...)
}

func (worker *Worker) LogError(format string, args ...interface{}) {
	worker.Config.AccLog.Error("["+worker.Request.ID+"] ("+worker.Request.Client+") ", format, args...)
}
