// Package responsewriter wraps http.ResponseWriter to capture the status
// code and bytes written, for logging and metrics middleware.
package responsewriter

import "net/http"

// Recorder captures status and size while delegating to the wrapped
// writer.
type Recorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

// New wraps w. Status defaults to 200 if the handler never calls
// WriteHeader.
func New(w http.ResponseWriter) *Recorder {
	return &Recorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *Recorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.status = code
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *Recorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	n, err := r.ResponseWriter.Write(b)
	r.bytes += int64(n)
	return n, err
}

// Status returns the captured status code.
func (r *Recorder) Status() int { return r.status }

// BytesWritten returns the number of body bytes written so far.
func (r *Recorder) BytesWritten() int64 { return r.bytes }

// Unwrap supports http.ResponseController.
func (r *Recorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }
