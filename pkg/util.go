package pkg

import (
	"strconv"
	"strings"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

func Ptr[T any](v T) *T {
	return &v
}

// ParseOptionalInt64 parses s as a base 10 int64. An empty (or whitespace only)
// string yields nil.
func ParseOptionalInt64(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// EmptyToNil turns blank strings into nil.
func EmptyToNil(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
