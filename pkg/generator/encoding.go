package generator

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Encoding methods understood by EncodingEngine.
const (
	EncodeNone      = "none"
	EncodeURL       = "url"
	EncodeDoubleURL = "double_url"
	EncodeBase64    = "base64"
	EncodeHex       = "hex"
	EncodeUnicode   = "unicode"
	EncodeJSONWrap  = "json_wrap"
	EncodeArray     = "array"
)

// EncodingEngine rewrites dataset values into transport-specific forms,
// e.g. for pasting into a query string or a shell argument.
type EncodingEngine struct {
	// Field is the JSON key used by json_wrap.
	Field string
}

func NewEncodingEngine() *EncodingEngine {
	return &EncodingEngine{Field: "name"}
}

func (ee *EncodingEngine) Encode(value string, method string) string {
	switch method {
	case EncodeURL:
		return url.QueryEscape(value)
	case EncodeDoubleURL:
		return url.QueryEscape(url.QueryEscape(value))
	case EncodeBase64:
		return base64.StdEncoding.EncodeToString([]byte(value))
	case EncodeHex:
		return hex.EncodeToString([]byte(value))
	case EncodeUnicode:
		return ee.unicodeEncode(value)
	case EncodeJSONWrap:
		return ee.marshal(map[string]string{ee.Field: value}, value)
	case EncodeArray:
		return ee.marshal([]string{value}, value)
	default:
		return value
	}
}

func (ee *EncodingEngine) marshal(v any, fallback string) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fallback
	}
	return string(data)
}

func (ee *EncodingEngine) unicodeEncode(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r > 0xFFFF {
			fmt.Fprintf(&b, "\\U%08x", r)
			continue
		}
		fmt.Fprintf(&b, "\\u%04x", r)
	}
	return b.String()
}
