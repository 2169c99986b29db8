package contenttype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        string
	}{
		{"plain", "application/json", "application/json"},
		{"with charset", "application/json; charset=utf-8", "application/json"},
		{"uppercase", "Application/JSON", "application/json"},
		{"value type", "application/vnd.fluiddb.value+json", "application/vnd.fluiddb.value+json"},
		{"malformed params", "text/html; =", "text/html"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MediaType(tt.contentType))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        Category
	}{
		{"application/json", "application/json", Structured},
		{"json with charset", "application/json; charset=utf-8", Structured},
		{"primitive value", "application/vnd.fluiddb.value+json", Primitive},
		{"primitive value with params", "application/vnd.fluiddb.value+json; charset=utf-8", Primitive},

		{"vendor json", "application/vnd.api+json", Text},
		{"text/html", "text/html", Text},
		{"text/plain", "text/plain", Text},
		{"xml", "application/xml", Text},
		{"yaml", "application/yaml", Text},
		{"form-urlencoded", "application/x-www-form-urlencoded", Text},

		{"image/png", "image/png", Binary},
		{"octet-stream", "application/octet-stream", Binary},
		{"empty", "", Binary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.contentType))
		})
	}
}

func TestIsDecodable(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        bool
	}{
		{"application/json", "application/json", true},
		{"json with charset", "application/json; charset=utf-8", true},
		{"primitive value", "application/vnd.fluiddb.value+json", true},
		{"uppercase", "Application/JSON", true},
		{"vendor json", "application/vnd.api+json", false},
		{"html", "text/html", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDecodable(tt.contentType))
		})
	}
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		data        []byte
		want        bool
	}{
		{"json", "application/json", nil, false},
		{"primitive value", "application/vnd.fluiddb.value+json", nil, false},
		{"html", "text/html", nil, false},
		{"form", "application/x-www-form-urlencoded", nil, false},

		{"image", "image/png", nil, true},
		{"octet-stream", "application/octet-stream", nil, true},
		{"gzip", "application/gzip", nil, true},
		{"pdf", "application/pdf", nil, true},

		// UTF-8 fallback
		{"empty with utf8 data", "", []byte("hello world"), false},
		{"empty with binary data", "", []byte{0xff, 0xfe, 0x00, 0x01}, true},
		{"empty with nil data", "", nil, false},
		{"unknown with utf8", "application/unknown", []byte("valid text"), false},
		{"unknown with binary", "application/unknown", []byte{0x80, 0x81}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBinary(tt.contentType, tt.data))
		})
	}
}
