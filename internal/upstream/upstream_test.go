package upstream

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	root := errors.New("connection refused")

	testCases := []struct {
		err      error
		expected Kind
	}{
		{err: Network("cek_stock", root), expected: KindNetwork},
		{err: Status("cek_stock", 502, "502 Bad Gateway"), expected: KindStatus},
		{err: fmt.Errorf("load: %w", Parse("area_table", root)), expected: KindParse},
		{err: root, expected: 0},
		{err: nil, expected: 0},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, KindOf(test.err))
	}
}

func TestErrorUnwrap(t *testing.T) {
	root := errors.New("no table found")
	err := Parse("area_table", root)

	require.ErrorIs(t, err, root)
	require.Equal(t, "area_table: parse failure: no table found", err.Error())
}
