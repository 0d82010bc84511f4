package twitter

import (
	"strconv"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// 64bit id 가 float64 로 깨지지 않도록 int64 -> uint64 -> float64 순서로 시도
type jsoniterNumberDec struct{}

func (enc jsoniterNumberDec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.NumberValue:
		r := iter.ReadNumber()
		rs := r.String()

		if i64, err := strconv.ParseInt(rs, 10, 64); err == nil {
			*(*interface{})(ptr) = i64
			return
		}
		if ui64, err := strconv.ParseUint(rs, 10, 64); err == nil {
			*(*interface{})(ptr) = ui64
			return
		}
		if f64, err := strconv.ParseFloat(rs, 64); err == nil {
			*(*interface{})(ptr) = f64
			return
		}
		*(*interface{})(ptr) = r
	default:
		*(*interface{})(ptr) = iter.Read()
	}
}
