// Package util provides common utility functions.
package util

import "strings"

func Must2[T any](v T, e error) T {
	if e != nil {
		panic(e)
	}
	return v
}

func LCase[T ~string](s T) T { return T(strings.ToLower(string(s))) }

func TrimSP[T ~string](s T) T { return T(strings.TrimSpace(string(s))) }
