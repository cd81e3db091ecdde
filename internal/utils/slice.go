package utils

import "golang.org/x/exp/constraints"

func SliceContains[T comparable](slice []T, v T) bool {
	for _, e := range slice {
		if e == v {
			return true
		}
	}

	return false
}

func MapSlice[T any, U any](s []T, mapper func(e T) U) []U {
	result := make([]U, len(s))

	for i, e := range s {
		result[i] = mapper(e)
	}

	return result
}

func FilterSlice[T any](s []T, keep func(e T) bool) []T {
	var result []T

	for _, e := range s {
		if keep(e) {
			result = append(result, e)
		}
	}

	return result
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
