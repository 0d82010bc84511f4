package twitter

import (
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

const (
	// ddd MMM dd HH:mm:ss +ffff yyyy
	RFC2822 = "Mon Jan 02 15:04:05 -0700 2006"
)

type jsoniterTimeEncDec struct{}

func (enc jsoniterTimeEncDec) IsEmpty(ptr unsafe.Pointer) bool {
	return (*(*time.Time)(ptr)).IsZero()
}
func (enc jsoniterTimeEncDec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	t := *(*time.Time)(ptr)
	if t.IsZero() {
		stream.WriteNil()
		return
	}
	stream.WriteString(t.Format(RFC2822))
}
func (enc jsoniterTimeEncDec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.ReadNil() {
		*((*time.Time)(ptr)) = time.Time{}
		return
	}

	t, err := time.ParseInLocation(RFC2822, iter.ReadString(), time.UTC)
	if err != nil {
		iter.ReportError("decode created_at", err.Error())
		return
	}
	*((*time.Time)(ptr)) = t
}
