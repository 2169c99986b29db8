package fluidinfo

import (
	"net/url"
	"strings"
)

// Path addresses a resource relative to the instance URL. Build one with
// StringPath or Segments.
type Path struct {
	raw      string
	segments []string
	isList   bool
}

// StringPath is a full path such as "/users/test". Slashes are kept as
// separators; every other reserved byte is percent-encoded.
func StringPath(p string) Path {
	return Path{raw: p}
}

// Segments is a path given as individual segments. Each segment is escaped
// on its own, so a "/" inside a segment becomes %2F.
func Segments(segments ...string) Path {
	return Path{segments: append([]string(nil), segments...), isList: true}
}

// String returns the unescaped path, joining segments with "/".
func (p Path) String() string {
	if p.isList {
		return "/" + strings.Join(p.segments, "/")
	}
	return p.raw
}

// escaped returns the percent-encoded path.
func (p Path) escaped() string {
	if !p.isList {
		return quote(p.raw, "/")
	}
	parts := make([]string, len(p.segments))
	for i, s := range p.segments {
		parts[i] = quote(s, "")
	}
	return "/" + strings.Join(parts, "/")
}

// isTagValue reports whether the path addresses a tag-value on an object,
// either by id (/objects/...) or by about value (/about...).
func (p Path) isTagValue() bool {
	s := p.String()
	return strings.HasPrefix(s, "/objects/") || strings.HasPrefix(s, "/about")
}

// BuildURL joins the instance URL, the escaped path, the query parameters and,
// for /values requests, one tag=<name> parameter per tag.
func BuildURL(instance string, path Path, query url.Values, tags []string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(instance, "/"))
	b.WriteString(path.escaped())

	sep := "?"
	if len(query) > 0 {
		b.WriteString(sep)
		b.WriteString(query.Encode())
		sep = "&"
	}
	if len(tags) > 0 && strings.HasPrefix(path.String(), "/values") {
		tagQuery := make(url.Values, 1)
		tagQuery["tag"] = tags
		b.WriteString(sep)
		b.WriteString(tagQuery.Encode())
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// quote percent-encodes every byte of s except ASCII letters, digits,
// "_.-" and the bytes listed in safe.
func quote(s, safe string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || strings.IndexByte(safe, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_' || c == '.' || c == '-':
		return true
	}
	return false
}
