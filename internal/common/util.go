package common

import "strings"

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// It is used to drop passwords from memory once they were sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// SplitList splits comma separated text into trimmed, non-empty items,
// preserving order. It is used for ingredient lists.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList is the inverse of SplitList: it normalizes items and joins them
// with a bare comma, the form the backend stores.
func JoinList(items []string) string {
	clean := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			clean = append(clean, it)
		}
	}
	return strings.Join(clean, ",")
}
