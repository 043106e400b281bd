package middleware

import (
	"bufio"
	"bytes"
	"io"
	"net"
	"net/http"

	"atelier/internal/revalidate"

	"github.com/labstack/echo/v4"
)

// PageCache serves public GET responses from the revalidator's page
// cache and captures fresh ones on miss. Cached entries disappear when
// a mutation fires the revalidation signal, so detail fetches stay
// read-only and referentially consistent whether a page is loaded
// directly or mounted as an overlay.
func PageCache(reval *revalidate.Revalidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			path := c.Request().URL.Path
			if body, ok := reval.Page(path); ok {
				return c.JSONBlob(http.StatusOK, body)
			}

			res := c.Response()
			buf := new(bytes.Buffer)
			res.Writer = &bodyCaptureWriter{
				ResponseWriter: res.Writer,
				tee:            io.MultiWriter(res.Writer, buf),
			}

			if err := next(c); err != nil {
				return err
			}

			if res.Status == http.StatusOK {
				reval.StorePage(path, buf.Bytes())
			}

			return nil
		}
	}
}

type bodyCaptureWriter struct {
	http.ResponseWriter
	tee io.Writer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	return w.tee.Write(b)
}

func (w *bodyCaptureWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *bodyCaptureWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}
