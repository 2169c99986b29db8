package fluidinfo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/usestring/fluidinfo-go/pkg/contenttype"
)

// Response is the outcome of a call. Body holds the decoded JSON value for
// application/json and application/vnd.fluiddb.value+json replies, and the
// raw bytes otherwise.
//
// Decoded JSON uses map[string]any, []any, string, bool, nil, int64 for
// integral numbers and float64 for numbers with a fraction or exponent.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       any
	Raw        []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ContentType returns the media type of the response without parameters.
func (r *Response) ContentType() string {
	return contenttype.MediaType(r.Header.Get("Content-Type"))
}

// Decode unmarshals the raw JSON body into v.
func (r *Response) Decode(v any) error {
	if !contenttype.IsDecodable(r.Header.Get("Content-Type")) {
		return fmt.Errorf("response content type %q is not JSON", r.ContentType())
	}
	if err := json.Unmarshal(r.Raw, v); err != nil {
		return &DecodingError{StatusCode: r.StatusCode, ContentType: r.ContentType(), Raw: r.Raw, Err: err}
	}
	return nil
}

// encoded is a request body ready for the transport.
type encoded struct {
	payload     []byte
	contentType string // empty means the transport default
}

// encodeBody applies the content-type rules for a request body:
// structured values become JSON, tag-value PUTs get either the caller's
// mime type or the primitive value type, and everything else is sent as is.
func encodeBody(method string, path Path, body any, mime string) (encoded, error) {
	kind := Classify(body, mime)

	if kind == StructuredObject {
		data, err := json.Marshal(body)
		if err != nil {
			return encoded{}, err
		}
		return encoded{payload: data, contentType: contenttype.JSON}, nil
	}

	if method == http.MethodPut && path.isTagValue() {
		switch kind {
		case Primitive:
			data, err := encodePrimitive(body)
			if err != nil {
				return encoded{}, err
			}
			return encoded{payload: data, contentType: contenttype.PrimitiveValue}, nil
		default:
			if mime == "" {
				return encoded{}, ErrMimeRequired
			}
		}
	}

	data, err := rawBytes(body)
	if err != nil {
		return encoded{}, err
	}
	return encoded{payload: data, contentType: mime}, nil
}

// encodePrimitive marshals a primitive value on its own. Integral floats
// keep a ".0" so the server stores a float rather than an integer.
func encodePrimitive(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if v != nil {
		switch reflect.TypeOf(v).Kind() {
		case reflect.Float32, reflect.Float64:
			if !bytes.ContainsAny(data, ".eE") {
				data = append(data, ".0"...)
			}
		}
	}
	return data, nil
}

// rawBytes returns the body bytes of a value sent without encoding.
func rawBytes(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	case string:
		return []byte(b), nil
	case io.Reader:
		data, err := io.ReadAll(b)
		if err != nil {
			return nil, fmt.Errorf("reading body: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("cannot send a %T body without encoding it; pass bytes, a string or an io.Reader", body)
	}
}

// decodeResponse turns a raw exchange into a Response. JSON is decoded only
// for the two Fluidinfo JSON media types and only when there is a body, so
// HEAD replies come back with empty raw bytes.
func decodeResponse(raw *RawResponse) (*Response, error) {
	header := raw.Header
	if header == nil {
		header = make(http.Header)
	}
	resp := &Response{
		StatusCode: raw.StatusCode,
		Header:     header,
		Body:       raw.Body,
		Raw:        raw.Body,
	}
	if raw.Body == nil {
		resp.Body = []byte{}
	}

	contentType := header.Get("Content-Type")
	if len(raw.Body) == 0 || !contenttype.IsDecodable(contentType) {
		return resp, nil
	}

	value, err := DecodeJSON(raw.Body)
	if err != nil {
		return resp, &DecodingError{
			StatusCode:  raw.StatusCode,
			ContentType: contenttype.MediaType(contentType),
			Raw:         raw.Body,
			Err:         err,
		}
	}
	resp.Body = value
	return resp, nil
}

var errTrailingData = errors.New("unexpected data after JSON value")

// DecodeJSON decodes a single JSON document the way response bodies are
// decoded: integral literals become int64 and other numbers float64.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return convertNumbers(v), nil
}

func convertNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		s := val.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := val.Int64(); err == nil {
				return i
			}
		}
		f, _ := val.Float64()
		return f
	case map[string]any:
		for k, elem := range val {
			val[k] = convertNumbers(elem)
		}
		return val
	case []any:
		for i, elem := range val {
			val[i] = convertNumbers(elem)
		}
		return val
	default:
		return v
	}
}
