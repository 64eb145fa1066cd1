package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	code := NewOrderNumber()

	require.Len(t, code, OrderNumberLength)
	for _, c := range code {
		require.Contains(t, orderNumberAlphabet, string(c))
	}
	require.Equal(t, strings.ToUpper(code), code)
}

func TestNewOrderNumber_Dispersion(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		seen[NewOrderNumber()] = struct{}{}
	}

	// 1000次內出現大量重複代表亂數來源有問題
	require.Greater(t, len(seen), 990)
}
