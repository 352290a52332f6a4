// Package gateway adapts serverless invocation records to the HTTP router.
// One Invoke call is one request: the record becomes an *http.Request, the
// router serves it, and the recorded response becomes the output record.
package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	apperrors "budgetapi/internal/errors"
	"budgetapi/internal/logger"
	"budgetapi/internal/middleware"
)

// Method is an HTTP method accepted at the invocation boundary.
type Method string

const (
	MethodGet     Method = http.MethodGet
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodDelete  Method = http.MethodDelete
	MethodOptions Method = http.MethodOptions
)

// ParseMethod reports whether s is one of the accepted methods. An empty
// string is GET.
func ParseMethod(s string) (Method, bool) {
	switch m := Method(s); m {
	case "":
		return MethodGet, true
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodOptions:
		return m, true
	default:
		return "", false
	}
}

// Request is an API-gateway style invocation record.
type Request struct {
	HTTPMethod            string            `json:"httpMethod"`
	Path                  string            `json:"path"`
	QueryStringParameters map[string]string `json:"queryStringParameters"`
	Headers               map[string]string `json:"headers"`
	Body                  *string           `json:"body"`
	IsBase64Encoded       bool              `json:"isBase64Encoded"`
}

// Response is the record returned for every invocation.
type Response struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// Handler dispatches invocation records to an http.Handler.
type Handler struct {
	router http.Handler
}

// New returns a Handler serving records with router.
func New(router http.Handler) *Handler {
	return &Handler{router: router}
}

// Invoke serves one record. Every record that can be expressed as an HTTP
// request goes through the router, so undecodable bodies and unsupported
// methods are logged, measured and answered like any other failure. The
// returned error is reserved for records that cannot be turned into a request
// at all.
func (h *Handler) Invoke(ctx context.Context, req Request) (Response, error) {
	httpReq, err := newHTTPRequest(ctx, req)
	if err != nil {
		return Response{}, err
	}

	w := newResponseWriter()
	h.router.ServeHTTP(w, httpReq)
	return w.response(), nil
}

func newHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	path := req.Path
	if path == "" {
		path = "/"
	}

	u := &url.URL{Path: path}
	if len(req.QueryStringParameters) > 0 {
		q := url.Values{}
		for k, v := range req.QueryStringParameters {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	method, ok := ParseMethod(req.HTTPMethod)
	if !ok {
		logger.Named("gateway").Warnw("unsupported method", "method", req.HTTPMethod, "path", path)
		ctx = middleware.WithRejection(ctx, apperrors.ErrNotFound)
	}

	// Preflight never reads the body.
	var body []byte
	if ok && method != MethodOptions && req.Body != nil {
		if req.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(*req.Body)
			if err != nil {
				ctx = middleware.WithRejection(ctx, apperrors.WithMessage(apperrors.ErrInvalidInput,
					fmt.Sprintf("invalid base64 body: %v", err)))
			} else {
				body = decoded
			}
		} else {
			body = []byte(*req.Body)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	// Set after construction so methods outside the accepted set still reach
	// the router's 404 path verbatim.
	if ok {
		httpReq.Method = string(method)
	} else {
		httpReq.Method = req.HTTPMethod
	}
	httpReq.RequestURI = u.RequestURI()
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if httpReq.Header.Get("Content-Type") == "" && len(body) > 0 {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return httpReq, nil
}

// responseWriter records what the router writes.
type responseWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newResponseWriter() *responseWriter {
	return &responseWriter{header: http.Header{}}
}

func (w *responseWriter) Header() http.Header {
	return w.header
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

func (w *responseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *responseWriter) response() Response {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}

	headers := make(map[string]string, len(w.header))
	for k, v := range w.header {
		headers[k] = strings.Join(v, ", ")
	}

	return Response{
		StatusCode: status,
		Headers:    headers,
		Body:       w.body.String(),
	}
}
