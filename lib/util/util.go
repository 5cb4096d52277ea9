package util

import "strings"

// Map applies fn to every element of collection.
func Map[T, U any](collection []T, fn func(T) U) []U {
	ret := make([]U, 0, len(collection))
	for _, v := range collection {
		ret = append(ret, fn(v))
	}
	return ret
}

// RemovePrefix reports whether s starts with prefix and returns the rest.
func RemovePrefix(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) {
		return s[len(prefix):], true
	}
	return s, false
}
