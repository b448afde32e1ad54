package testutil

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// MockContext is a huma.Context for exercising request helpers without a router
type MockContext struct {
	ctx        context.Context
	method     string
	params     map[string]string
	query      url.Values
	headers    http.Header
	body       io.Reader
	host       string
	remoteAddr string
	operation  *huma.Operation
	url        url.URL

	status      int
	respHeaders http.Header
	respBody    bytes.Buffer
}

func NewMockContext() *MockContext {
	return &MockContext{
		ctx:         context.Background(),
		method:      http.MethodGet,
		params:      make(map[string]string),
		query:       make(url.Values),
		headers:     make(http.Header),
		host:        "localhost:8080",
		remoteAddr:  "127.0.0.1:12345",
		operation:   &huma.Operation{},
		url:         url.URL{Path: "/"},
		respHeaders: make(http.Header),
	}
}

func (m *MockContext) WithContext(ctx context.Context) *MockContext {
	m.ctx = ctx
	return m
}

func (m *MockContext) WithMethod(method string) *MockContext {
	m.method = method
	return m
}

func (m *MockContext) WithPath(path string) *MockContext {
	m.url.Path = path
	return m
}

func (m *MockContext) WithParam(name, value string) *MockContext {
	m.params[name] = value
	return m
}

func (m *MockContext) WithQuery(name, value string) *MockContext {
	m.query.Set(name, value)
	return m
}

func (m *MockContext) WithHeader(name, value string) *MockContext {
	m.headers.Set(name, value)
	return m
}

func (m *MockContext) WithRemoteAddr(addr string) *MockContext {
	m.remoteAddr = addr
	return m
}

func (m *MockContext) WithJSONBody(json string) *MockContext {
	m.body = strings.NewReader(json)
	m.headers.Set("Content-Type", "application/json")
	return m
}

func (m *MockContext) Context() context.Context   { return m.ctx }
func (m *MockContext) Operation() *huma.Operation { return m.operation }
func (m *MockContext) Method() string             { return m.method }
func (m *MockContext) Param(name string) string   { return m.params[name] }
func (m *MockContext) Query(name string) string   { return m.query.Get(name) }
func (m *MockContext) Header(name string) string  { return m.headers.Get(name) }
func (m *MockContext) Host() string               { return m.host }
func (m *MockContext) RemoteAddr() string         { return m.remoteAddr }
func (m *MockContext) TLS() *tls.ConnectionState  { return nil }
func (m *MockContext) Version() huma.ProtoVersion {
	return huma.ProtoVersion{Proto: "HTTP/1.1", ProtoMajor: 1, ProtoMinor: 1}
}

func (m *MockContext) URL() url.URL {
	u := m.url
	u.RawQuery = m.query.Encode()
	return u
}

func (m *MockContext) EachHeader(fn func(name, value string)) {
	for name, values := range m.headers {
		for _, value := range values {
			fn(name, value)
		}
	}
}

func (m *MockContext) BodyReader() io.Reader {
	if m.body != nil {
		return m.body
	}
	return strings.NewReader("")
}

func (m *MockContext) GetMultipartForm() (*multipart.Form, error) {
	return nil, http.ErrNotMultipart
}

func (m *MockContext) SetReadDeadline(time.Time) error { return nil }

func (m *MockContext) SetStatus(code int) { m.status = code }
func (m *MockContext) Status() int        { return m.status }

func (m *MockContext) AppendHeader(name, value string) { m.respHeaders.Add(name, value) }
func (m *MockContext) SetHeader(name, value string)    { m.respHeaders.Set(name, value) }
func (m *MockContext) BodyWriter() io.Writer           { return &m.respBody }

// ResponseHeader returns a header set by the code under test
func (m *MockContext) ResponseHeader(name string) string {
	return m.respHeaders.Get(name)
}

func (m *MockContext) ResponseBody() string {
	return m.respBody.String()
}
