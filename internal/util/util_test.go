package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeTextList(t *testing.T) {
	testCases := []struct {
		name        string
		items       []string
		conjunction string
		want        string
	}{
		{name: "empty", items: nil, conjunction: "or", want: ""},
		{name: "single", items: []string{"a"}, conjunction: "or", want: "a"},
		{name: "pair", items: []string{"a", "b"}, conjunction: "or", want: "a or b"},
		{name: "three with and", items: []string{"a", "b", "c"}, conjunction: "and", want: "a, b, and c"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MakeTextList(tc.items, tc.conjunction))
		})
	}
}
