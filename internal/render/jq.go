package render

import (
	"fmt"

	"github.com/itchyny/gojq"
)

// Filter runs a jq expression against a decoded JSON value and returns
// every value it produces.
func Filter(v any, expression string) ([]any, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	results := make([]any, 0)
	iter := code.Run(toJQ(v))
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := out.(error); isErr {
			if haltErr, ok := err.(*gojq.HaltError); ok && haltErr.Value() == nil {
				break
			}
			return nil, fmt.Errorf("jq: %w", err)
		}
		results = append(results, out)
	}
	return results, nil
}

// toJQ converts the client's int64 numbers into the int values gojq
// expects. Maps and slices are copied.
func toJQ(v any) any {
	switch val := v.(type) {
	case int64:
		if int64(int(val)) == val {
			return int(val)
		}
		return float64(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = toJQ(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = toJQ(elem)
		}
		return out
	default:
		return v
	}
}
