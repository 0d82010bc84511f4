package twitter

import (
	"errors"
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"
)

const (
	// 이보다 큰 응답은 읽지 않고 에러 처리
	MaxResponseBodySize = 4 * 1024 * 1024 // 4 MiB
)

var ErrBodyTooLarge = fmt.Errorf("twitter: response body exceeds %d bytes", MaxResponseBodySize)

// readBody copies r into a pooled buffer. The caller must release it with
// bytebufferpool.Put.
func readBody(r io.Reader) (*bytebufferpool.ByteBuffer, error) {
	buf := bytebufferpool.Get()
	buf.Reset()

	_, err := buf.ReadFrom(io.LimitReader(r, MaxResponseBodySize+1))
	if err != nil && !errors.Is(err, io.EOF) {
		bytebufferpool.Put(buf)
		return nil, err
	}

	if buf.Len() > MaxResponseBodySize {
		bytebufferpool.Put(buf)
		return nil, ErrBodyTooLarge
	}

	return buf, nil
}
