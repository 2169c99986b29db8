package render

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/fluidinfo-go/pkg/fluidinfo"
)

func jsonResponse(status int, body any) *fluidinfo.Response {
	return &fluidinfo.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       body,
	}
}

func TestPrinter_JSONBody(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}

	err := p.Print(jsonResponse(200, map[string]any{"id": "5ef2", "count": int64(3)}))
	require.NoError(t, err)
	assert.Equal(t, "200 OK\n{\n  \"count\": 3,\n  \"id\": \"5ef2\"\n}\n", buf.String())
}

func TestPrinter_Headers(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, ShowHeaders: true}

	resp := &fluidinfo.Response{
		StatusCode: 204,
		Header: http.Header{
			"Content-Type": {"application/vnd.fluiddb.value+json"},
			"Date":         {"Wed, 14 Oct 2026 10:00:00 GMT"},
		},
		Body: []byte{},
	}
	require.NoError(t, p.Print(resp))
	assert.Equal(t, "204 No Content\nContent-Type: application/vnd.fluiddb.value+json\nDate: Wed, 14 Oct 2026 10:00:00 GMT\n\n", buf.String())
}

func TestPrinter_RawText(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, Quiet: true}

	resp := &fluidinfo.Response{
		StatusCode: 200,
		Header:     http.Header{"Content-Type": {"text/html"}},
		Body:       []byte("<h1>Hello</h1>"),
	}
	require.NoError(t, p.Print(resp))
	assert.Equal(t, "<h1>Hello</h1>\n", buf.String())
}

func TestPrinter_RawBinary(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, Quiet: true}

	resp := &fluidinfo.Response{
		StatusCode: 200,
		Header:     http.Header{"Content-Type": {"image/png"}},
		Body:       []byte{0x89, 'P', 'N', 'G'},
	}
	require.NoError(t, p.Print(resp))
	assert.Equal(t, "<4 bytes of image/png>\n", buf.String())
}

func TestPrinter_JQ(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, Quiet: true, JQ: ".results.id[]"}

	body := map[string]any{
		"results": map[string]any{
			"id": []any{"a", "b"},
		},
	}
	require.NoError(t, p.Print(jsonResponse(200, body)))
	assert.Equal(t, "\"a\"\n\"b\"\n", buf.String())
}

func TestPrinter_JQOnRawBody(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, Quiet: true, JQ: "."}

	resp := &fluidinfo.Response{StatusCode: 200, Header: http.Header{"Content-Type": {"text/plain"}}, Body: []byte("x")}
	assert.Error(t, p.Print(resp))
}

func TestPrinter_Compact(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, Quiet: true, Compact: &CompactOptions{MaxArrayItems: 2}}

	require.NoError(t, p.Print(jsonResponse(200, []any{"a", "b", "c", "d"})))
	assert.Equal(t, "[\n  \"a\",\n  \"b\",\n  \"... (2 more items)\"\n]\n", buf.String())
}

func TestCompact(t *testing.T) {
	in := map[string]any{
		"ids":  []any{int64(1), int64(2), int64(3), int64(4)},
		"text": "abcdefgh",
		"n":    1.5,
	}
	out := Compact(in, &CompactOptions{MaxArrayItems: 3, MaxStringLen: 4})

	assert.Equal(t, map[string]any{
		"ids":  []any{int64(1), int64(2), int64(3), "... (1 more items)"},
		"text": "abcd... (4 more chars)",
		"n":    1.5,
	}, out)
	// input untouched
	assert.Len(t, in["ids"], 4)
	assert.Equal(t, "abcdefgh", in["text"])
}

func TestCompact_NoLimits(t *testing.T) {
	in := []any{"a", "b"}
	assert.Equal(t, in, Compact(in, &CompactOptions{}))
}

func TestFilter(t *testing.T) {
	body := map[string]any{"id": "5ef2", "count": int64(3), "tags": []any{"a", "b"}}

	got, err := Filter(body, ".count + 1")
	require.NoError(t, err)
	assert.Equal(t, []any{4}, got)

	got, err = Filter(body, ".tags | length")
	require.NoError(t, err)
	assert.Equal(t, []any{2}, got)

	_, err = Filter(body, ".[")
	assert.Error(t, err)

	_, err = Filter(body, ".id | keys")
	assert.Error(t, err)
}
