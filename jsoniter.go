package twitter

import (
	"reflect"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

var jsonTwitter = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            false,
	ValidateJsonRawMessage: true,
}.Froze()

func init() {
	jsonTwitter.RegisterExtension(&jsoniterTwitterExtension{})
}

var typeTime = reflect.TypeOf(time.Time{})

// time.Time 는 트위터 형식으로, interface{} 숫자는 정밀도 유지
type jsoniterTwitterExtension struct {
	jsoniter.DummyExtension
}

func (ext *jsoniterTwitterExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	switch {
	case typ.Type1() == typeTime:
		return jsoniterTimeEncDec{}
	case typ.Kind() == reflect.Interface && typ.Type1().NumMethod() == 0:
		return jsoniterNumberDec{}
	}
	return nil
}

func (ext *jsoniterTwitterExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if typ.Type1() == typeTime {
		return jsoniterTimeEncDec{}
	}
	return nil
}
