package middleware

import "net/http"

// SafeResponseWriter captures the status code and bytes written so the
// request logger can report them.
type SafeResponseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *SafeResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *SafeResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *SafeResponseWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *SafeResponseWriter) BytesWritten() int {
	return w.bytes
}

// InjectWriter wraps the response writer so downstream middlewares can read
// the response status. It must be the outermost middleware.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&SafeResponseWriter{ResponseWriter: w}, r)
	})
}
