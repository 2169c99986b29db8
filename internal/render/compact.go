package render

import "fmt"

// CompactOptions controls how decoded bodies are trimmed for display.
type CompactOptions struct {
	MaxArrayItems int // Trim arrays to N items (0 = no limit)
	MaxStringLen  int // Truncate strings longer than N bytes (0 = no limit)
}

// Default values for compaction options.
const (
	DefaultMaxArrayItems = 10
	DefaultMaxStringLen  = 500
)

// DefaultCompactOptions returns the default compaction settings.
func DefaultCompactOptions() *CompactOptions {
	return &CompactOptions{
		MaxArrayItems: DefaultMaxArrayItems,
		MaxStringLen:  DefaultMaxStringLen,
	}
}

// Compact returns a copy of a decoded JSON value with long arrays and
// strings shortened. The input is not modified.
// If opts is nil, DefaultCompactOptions() is used.
func Compact(v any, opts *CompactOptions) any {
	if opts == nil {
		opts = DefaultCompactOptions()
	}
	return compactValue(v, opts)
}

func compactValue(v any, opts *CompactOptions) any {
	switch val := v.(type) {
	case []any:
		return compactArray(val, opts)
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, elem := range val {
			result[k] = compactValue(elem, opts)
		}
		return result
	case string:
		return compactString(val, opts)
	default:
		return v
	}
}

func compactString(s string, opts *CompactOptions) string {
	if opts.MaxStringLen <= 0 || len(s) <= opts.MaxStringLen {
		return s
	}
	return s[:opts.MaxStringLen] + fmt.Sprintf("... (%d more chars)", len(s)-opts.MaxStringLen)
}

func compactArray(arr []any, opts *CompactOptions) []any {
	n := len(arr)
	if opts.MaxArrayItems > 0 && n > opts.MaxArrayItems {
		n = opts.MaxArrayItems
	}

	result := make([]any, n, n+1)
	for i := 0; i < n; i++ {
		result[i] = compactValue(arr[i], opts)
	}
	if n < len(arr) {
		result = append(result, fmt.Sprintf("... (%d more items)", len(arr)-n))
	}
	return result
}
