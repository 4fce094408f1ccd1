package snapshot

import (
	"maps"
	"slices"
)

// Key is a type for storing values in a snapshot
type Key string

const (
	// KeyToken is the key holding the opaque session token.
	KeyToken Key = "token"

	// KeyRole is the key holding the session role.
	KeyRole Key = "role"
)

// Values holds snapshot entries.
type Values map[Key]string

// Keys returns the keys of v in sorted order.
func (v Values) Keys() []Key {
	return slices.Sorted(maps.Keys(v))
}

func (v Values) clone() Values {
	if v == nil {
		return Values{}
	}

	return maps.Clone(v)
}

func (v Values) pick(keys ...Key) Values {
	out := make(Values, len(keys))
	for _, k := range keys {
		if val, ok := v[k]; ok {
			out[k] = val
		}
	}

	return out
}

func toStrings(keys []Key) []string {
	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, string(k))
	}

	return s
}

func toEntries(v Values) map[string]string {
	m := make(map[string]string, len(v))
	for k, val := range v {
		m[string(k)] = val
	}

	return m
}

func fromEntries(m map[string]string) Values {
	v := make(Values, len(m))
	for k, val := range m {
		v[Key(k)] = val
	}

	return v
}
