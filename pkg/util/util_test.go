package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInPlaceFilter(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6}
	InPlaceFilter(&values, func(v int) bool { return v%2 == 0 })

	assert.Equal(t, []int{2, 4, 6}, values)
}

func TestStringPadding(t *testing.T) {
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "  ab", PadLeft("ab", 4))
	assert.Equal(t, " ab ", Centre("ab", 4))
	assert.Equal(t, "abcdef", PadRight("abcdef", 4))
	assert.Equal(t, "日本  ", PadRight("日本", 6))
}

func TestGetEnvironmentVariable(t *testing.T) {
	t.Setenv("RAILBOARD_TEST_VALUE", "set")

	assert.Equal(t, "set", GetEnvironmentVariable("RAILBOARD_TEST_VALUE", "default"))
	assert.Equal(t, "default", GetEnvironmentVariable("RAILBOARD_TEST_UNSET_VALUE", "default"))
	assert.True(t, ContainsString([]string{"a", "b"}, "b"))
}
