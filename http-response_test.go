package twitter

import (
	"bytes"
	"io"
	"net/http"
)

// roundTripFunc lets a test answer requests without a listener.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newResponseWithText(req *http.Request, statusCode int, responseBody []byte) *http.Response {
	return &http.Response{
		Status:        http.StatusText(statusCode),
		StatusCode:    statusCode,
		Proto:         req.Proto,
		ProtoMajor:    req.ProtoMajor,
		ProtoMinor:    req.ProtoMinor,
		Request:       req,
		Body:          io.NopCloser(bytes.NewReader(responseBody)),
		ContentLength: int64(len(responseBody)),
		Header: http.Header{
			"Content-Type": []string{"application/json; charset=utf-8"},
		},
	}
}
