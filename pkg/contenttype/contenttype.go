// Package contenttype classifies the media types exchanged with Fluidinfo.
package contenttype

import (
	"mime"
	"strings"
	"unicode/utf8"
)

// Media types with special meaning to the Fluidinfo API.
const (
	// JSON is used for structured request and response payloads.
	JSON = "application/json"
	// PrimitiveValue marks a tag-value holding a JSON-encoded primitive.
	PrimitiveValue = "application/vnd.fluiddb.value+json"
)

// Category represents a broad content-type classification.
type Category string

const (
	Structured Category = "structured" // application/json
	Primitive  Category = "primitive"  // application/vnd.fluiddb.value+json
	Text       Category = "text"
	Binary     Category = "binary"
)

// MediaType returns the lower-cased media type of a Content-Type header
// value with any parameters (charset, boundary, ...) removed.
// Falls back to trimming at the first ';' for malformed values.
func MediaType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType, _, _ = strings.Cut(contentType, ";")
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	}
	return mediaType
}

// Classify returns the category for a content-type header value.
// Returns Binary for empty content-type strings.
func Classify(contentType string) Category {
	if contentType == "" {
		return Binary
	}

	mediaType := MediaType(contentType)
	switch mediaType {
	case JSON:
		return Structured
	case PrimitiveValue:
		return Primitive
	}

	if strings.HasPrefix(mediaType, "text/") ||
		strings.Contains(mediaType, "json") ||
		strings.Contains(mediaType, "xml") ||
		strings.Contains(mediaType, "javascript") ||
		strings.Contains(mediaType, "yaml") ||
		mediaType == "application/x-www-form-urlencoded" {
		return Text
	}
	return Binary
}

// IsDecodable reports whether a response with this content type carries a
// JSON document the client should decode. Only the two Fluidinfo JSON media
// types qualify; vendor +json types are left opaque.
func IsDecodable(contentType string) bool {
	switch MediaType(contentType) {
	case JSON, PrimitiveValue:
		return true
	}
	return false
}

// IsBinary returns true if the content should not be printed as text.
// Falls back to UTF-8 validation when the content type says nothing useful.
func IsBinary(contentType string, data []byte) bool {
	if contentType != "" && Classify(contentType) != Binary {
		return false
	}
	mediaType := MediaType(contentType)
	if strings.HasPrefix(mediaType, "image/") ||
		strings.HasPrefix(mediaType, "audio/") ||
		strings.HasPrefix(mediaType, "video/") ||
		strings.Contains(mediaType, "octet-stream") ||
		strings.Contains(mediaType, "zip") ||
		strings.Contains(mediaType, "pdf") {
		return true
	}
	return !utf8.Valid(data)
}
