package twitter

import (
	"net/url"
	"strconv"
	"strings"
)

// url.Values sorts keys on Encode; the API documents a fixed order instead.
type params []param

type param struct {
	key   string
	value string
}

func (p params) add(key, value string) params {
	return append(p, param{key, value})
}

func (p params) addInt(key string, value int) params {
	return p.add(key, strconv.Itoa(value))
}

func (p params) addInt64(key string, value int64) params {
	return p.add(key, strconv.FormatInt(value, 10))
}

// addInt64IfSet skips zero, the "not supplied" value of optional ids.
func (p params) addInt64IfSet(key string, value int64) params {
	if value == 0 {
		return p
	}
	return p.addInt64(key, value)
}

func (p params) Encode() string {
	var sb strings.Builder
	for i, v := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(v.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(v.value))
	}
	return sb.String()
}
