package testutils

// TestingT is the part of testing.T the field helpers report through
type TestingT interface {
	Errorf(format string, args ...any)
}

// FieldsToMap indexes alternating key/value log fields by key. Dangling keys
// and non-string keys are reported through t and skipped.
func FieldsToMap(t TestingT, fields []any) map[string]any {
	out := make(map[string]any, len(fields)/2)
	for _, kv := range pairs(t, fields) {
		out[kv.key] = kv.value
	}
	return out
}

// FieldValue returns the value logged under key, reporting through t when absent
func FieldValue(t TestingT, fields []any, key string) any {
	for _, kv := range pairs(t, fields) {
		if kv.key == key {
			return kv.value
		}
	}
	t.Errorf("field %q not logged (fields: %v)", key, fields)
	return nil
}

type pair struct {
	key   string
	value any
}

func pairs(t TestingT, fields []any) []pair {
	var out []pair
	for i := 0; i < len(fields); i += 2 {
		if i+1 == len(fields) {
			t.Errorf("field at index %d has no value", i)
			break
		}
		key, ok := fields[i].(string)
		if !ok {
			t.Errorf("field key at index %d is %T, not string", i, fields[i])
			continue
		}
		out = append(out, pair{key: key, value: fields[i+1]})
	}
	return out
}
