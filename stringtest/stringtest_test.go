package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.neoscout.dev/neoscout/stringtest"
)

func TestJoinLF(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input []string
		want  string
	}{
		"empty": {
			input: nil,
			want:  "",
		},
		"single": {
			input: []string{"line1"},
			want:  "line1",
		},
		"multiple": {
			input: []string{"line1", "line2", "line3"},
			want:  "line1\nline2\nline3",
		},
		"trailing newline via empty element": {
			input: []string{"line1", ""},
			want:  "line1\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.JoinLF(tc.input...))
		})
	}
}

func TestJoinCRLF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "line1\r\nline2", stringtest.JoinCRLF("line1", "line2"))
}
