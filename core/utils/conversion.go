package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// The second return value reports whether the conversion succeeded.
func ToInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case uint16:
		return int(v), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		return i, err == nil
	case []byte:
		i, err := strconv.Atoi(strings.TrimSpace(string(v)))
		return i, err == nil
	default:
		i, err := strconv.Atoi(fmt.Sprintf("%v", v))
		return i, err == nil
	}
}

// ToPort converts val to a TCP port number.
// Anything that is not an integer in 1..65535 yields fallback.
func ToPort(val any, fallback int) int {
	p, ok := ToInt(val)
	if !ok || p < 1 || p > 65535 {
		return fallback
	}
	return p
}

// IsExactlyTrue reports whether s is the literal string "true".
// Unlike strconv.ParseBool it is case-sensitive and rejects "1", "TRUE", etc.
func IsExactlyTrue(s string) bool {
	return s == "true"
}
