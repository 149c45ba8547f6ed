// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// gzipWriter wraps http.ResponseWriter so handler writes pass through
// the gzip stream while headers still reach the underlying writer.
type gzipWriter struct {
	io.Writer
	http.ResponseWriter
	wroteHeader bool
}

func (w *gzipWriter) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.Writer.Write(b)
}

// Writers are pooled; per-request gzip.NewWriter allocation shows up
// under load on the score-array endpoints.
var gzipPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(io.Discard)
	},
}

// Compression applies gzip to responses when the client advertises
// support. The games list and aligned per-run score arrays are highly
// repetitive JSON, so the dashboard payloads compress well.
func Compression(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Caches must key on Accept-Encoding either way
		w.Header().Add("Vary", "Accept-Encoding")

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next(w, r)
			return
		}

		gz := gzipPool.Get().(*gzip.Writer)
		gz.Reset(w)
		defer func() {
			_ = gz.Close() // flushes the trailing gzip block; response already committed
			gzipPool.Put(gz)
		}()

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length") // stale after compression

		next(&gzipWriter{Writer: gz, ResponseWriter: w}, r)
	}
}
