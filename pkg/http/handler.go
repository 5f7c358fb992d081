package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type (
	Handler interface {
		Method() string
		Path() string
		Handle(w ResponseWriter, r *http.Request) error
	}

	ResponseWriter interface {
		SetHeader(key, value string) ResponseWriter
		SetStatusCode(httpCode int) ResponseWriter
		SetCookie(cookie *http.Cookie) ResponseWriter
		SetJSONBody(data any) ResponseWriter
		SetBody(contentType string, body []byte) ResponseWriter
		Redirect(url string, httpCode int) ResponseWriter
	}

	responseWriter struct {
		impl http.ResponseWriter

		body        []byte
		contentType string
		bodyErr     error
		httpCode    int
	}
)

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	body, err := json.Marshal(data)
	if err != nil {
		w.bodyErr = fmt.Errorf("encode body: %w", err)
		return w
	}

	return w.SetBody("application/json", body)
}

func (w *responseWriter) SetBody(contentType string, body []byte) ResponseWriter {
	w.body = body
	w.contentType = contentType
	return w
}

func (w *responseWriter) Redirect(url string, httpCode int) ResponseWriter {
	w.impl.Header().Set("Location", url)
	w.httpCode = httpCode
	w.body = nil
	return w
}

// Write keeps an explicitly set error status code and its body, other errors become 400 or 500.
func (w *responseWriter) Write(ctx context.Context, err error) {
	if err == nil {
		err = w.bodyErr
	}

	httpCode := w.httpCode
	writeBody := w.body != nil
	switch {
	case err == nil:
	case httpCode >= http.StatusBadRequest:
	case errors.Is(err, ErrParsingError):
		httpCode = http.StatusBadRequest
		writeBody = false
	default:
		httpCode = http.StatusInternalServerError
		writeBody = false
	}

	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	if writeBody {
		w.impl.Header().Set("Content-Type", w.contentType)
	}
	w.impl.WriteHeader(httpCode)
	if !writeBody {
		return
	}

	_, writeErr := w.impl.Write(w.body)
	if writeErr != nil && meta.Error == nil {
		meta.Error = fmt.Errorf("write body: %w", writeErr)
	}
}

func (w *responseWriter) WritePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &p

	w.impl.WriteHeader(http.StatusInternalServerError)
}

func httpHandlerWrapper(handler Handler) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler.Handle(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}
