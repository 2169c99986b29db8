package fluidinfo

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testInstance = "https://sandbox.fluidinfo.com"

func TestBuildURL_Paths(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{"string path unchanged", StringPath("/users/test"), testInstance + "/users/test"},
		{"string path keeps slashes", StringPath("/objects/1/test/foo"), testInstance + "/objects/1/test/foo"},
		{"string path encodes spaces", StringPath("/about/an object"), testInstance + "/about/an%20object"},
		{"string path encodes non-ascii bytes", StringPath("/about/ünïcode"), testInstance + "/about/%C3%BCn%C3%AFcode"},
		{"string path encodes question mark", StringPath("/about/why?"), testInstance + "/about/why%3F"},
		{"segments escape slashes", Segments("about", "an/- object", "test", "foo"), testInstance + "/about/an%2F-%20object/test/foo"},
		{"segments keep unreserved", Segments("tags", "test", "a_b.c-d"), testInstance + "/tags/test/a_b.c-d"},
		{"segments escape tilde", Segments("about", "~home"), testInstance + "/about/%7Ehome"},
		{"empty segment list", Segments(), testInstance + "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildURL(testInstance, tt.path, nil, nil))
		})
	}
}

func TestBuildURL_TrailingSlashInstance(t *testing.T) {
	assert.Equal(t, testInstance+"/users/test", BuildURL(testInstance+"/", StringPath("/users/test"), nil, nil))
}

func TestBuildURL_Query(t *testing.T) {
	query := url.Values{}
	query.Set("returnDescription", "True")
	query.Set("name", "a b&c")

	got := BuildURL(testInstance, StringPath("/namespaces/test"), query, nil)
	assert.Equal(t, testInstance+"/namespaces/test?name=a+b%26c&returnDescription=True", got)
}

func TestBuildURL_ValuesTags(t *testing.T) {
	query := url.Values{}
	query.Set("query", "has test/rating")

	got := BuildURL(testInstance, StringPath("/values"), query, []string{"fluiddb/about", "test/rating"})
	assert.Equal(t, testInstance+"/values?query=has+test%2Frating&tag=fluiddb%2Fabout&tag=test%2Frating", got)
}

func TestBuildURL_ValuesTagsWithoutQuery(t *testing.T) {
	got := BuildURL(testInstance, StringPath("/values"), nil, []string{"fluiddb/about"})
	assert.Equal(t, testInstance+"/values?tag=fluiddb%2Fabout", got)
}

func TestBuildURL_ValuesTagsFromSegments(t *testing.T) {
	got := BuildURL(testInstance, Segments("values"), nil, []string{"test/foo"})
	assert.Equal(t, testInstance+"/values?tag=test%2Ffoo", got)
}

func TestBuildURL_TagsIgnoredOutsideValues(t *testing.T) {
	got := BuildURL(testInstance, StringPath("/objects"), nil, []string{"test/foo"})
	assert.Equal(t, testInstance+"/objects", got)
}

func TestPath_String(t *testing.T) {
	assert.Equal(t, "/users/test", StringPath("/users/test").String())
	assert.Equal(t, "/about/a/b/test/foo", Segments("about", "a/b", "test", "foo").String())
}

func TestPath_IsTagValue(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want bool
	}{
		{"objects string", StringPath("/objects/123/test/foo"), true},
		{"objects segments", Segments("objects", "123", "test", "foo"), true},
		{"about string", StringPath("/about/foo/test/bar"), true},
		{"about segments", Segments("about", "a/b", "test", "bar"), true},
		{"objects collection", StringPath("/objects"), false},
		{"tags", StringPath("/tags/test/foo"), false},
		{"namespaces", Segments("namespaces", "test"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.isTagValue())
		})
	}
}

func TestSegments_CopiesInput(t *testing.T) {
	segs := []string{"about", "x"}
	p := Segments(segs...)
	segs[1] = "y"
	assert.Equal(t, "/about/x", p.String())
}
