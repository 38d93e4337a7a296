package conf

// Defaults maps flat config keys, e.g. "body.limit", to default values.
type Defaults map[string]any

// MergeDefaults merges maps into a single map, prefixing each key
// with ns.
func MergeDefaults[M ~map[string]V, V any](ns string, maps ...M) M {
	fullCap := 0
	for _, m := range maps {
		fullCap += len(m)
	}

	merged := make(M, fullCap)
	for _, m := range maps {
		for key, val := range m {
			merged[ns+"."+key] = val
		}
	}

	return merged
}
