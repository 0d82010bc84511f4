package twitter

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockServer answers requests strictly in the order they were expected and
// checks method, request URI and body of each.
type mockServer struct {
	*httptest.Server

	t *testing.T

	lock     sync.Mutex
	expected []*expectedRequest
}

type expectedRequest struct {
	method     string
	requestURI string
	body       *string

	statusCode int
	response   string
}

func newMockServer(t *testing.T) *mockServer {
	t.Helper()

	m := &mockServer{t: t}
	m.Server = httptest.NewServer(http.HandlerFunc(m.serve))

	t.Cleanup(func() {
		m.Close()

		m.lock.Lock()
		defer m.lock.Unlock()
		assert.Empty(t, m.expected, "unmet request expectations")
	})

	return m
}

func (m *mockServer) client(opts ...Option) *Client {
	m.t.Helper()

	c, err := NewClient(&Config{BaseURL: m.URL + "/"}, opts...)
	require.NoError(m.t, err)
	return c
}

func (m *mockServer) expect(method, requestURI string) *expectedRequest {
	e := &expectedRequest{
		method:     method,
		requestURI: requestURI,
		statusCode: http.StatusOK,
	}

	m.lock.Lock()
	m.expected = append(m.expected, e)
	m.lock.Unlock()

	return e
}

func (e *expectedRequest) withBody(body string) *expectedRequest {
	e.body = &body
	return e
}

func (e *expectedRequest) respond(statusCode int, response string) {
	e.statusCode = statusCode
	e.response = response
}

func (m *mockServer) serve(w http.ResponseWriter, r *http.Request) {
	m.lock.Lock()
	if len(m.expected) == 0 {
		m.lock.Unlock()
		assert.Fail(m.t, "unexpected request", "%s %s", r.Method, r.URL.RequestURI())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	e := m.expected[0]
	m.expected = m.expected[1:]
	m.lock.Unlock()

	body, err := io.ReadAll(r.Body)
	assert.NoError(m.t, err)

	assert.Equal(m.t, e.method, r.Method)
	assert.Equal(m.t, e.requestURI, r.URL.RequestURI())
	if e.body != nil {
		assert.Equal(m.t, *e.body, string(body))
		assert.Equal(m.t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.statusCode)
	_, _ = io.WriteString(w, e.response)
}

func jsonResource(t *testing.T, name string) string {
	t.Helper()

	b, err := os.ReadFile(filepath.Join("testdata", name+".json"))
	require.NoError(t, err)
	return string(b)
}
