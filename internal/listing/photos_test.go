package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeFotos(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "/static/uploads/a.jpg", []string{"/static/uploads/a.jpg"}},
		{"ordered", "/static/uploads/a.jpg,/static/uploads/b.jpg", []string{"/static/uploads/a.jpg", "/static/uploads/b.jpg"}},
		{"whitespace", " /static/uploads/a.jpg , /static/uploads/b.jpg ", []string{"/static/uploads/a.jpg", "/static/uploads/b.jpg"}},
		{"empty entries dropped", ",,/static/uploads/a.jpg,,", []string{"/static/uploads/a.jpg"}},
		{"only separators", ", , ,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeFotos(tt.csv))
		})
	}
}

// Decoding a re-encoded decode must be a fixed point, whatever the input
// looked like.
func TestDecodeEncodeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"/static/uploads/a.jpg",
		" /static/uploads/a.jpg ,, /static/uploads/b.jpg",
		"a, b , c",
		",,,",
	}
	for _, csv := range inputs {
		once := DecodeFotos(csv)
		again := DecodeFotos(EncodeFotos(once))
		assert.Equal(t, once, again, "input %q", csv)
	}
}

func TestEncodeFotosPreservesOrder(t *testing.T) {
	got := EncodeFotos([]string{" /a.jpg", "/b.jpg ", "", "/c.jpg"})
	assert.Equal(t, "/a.jpg,/b.jpg,/c.jpg", got)
}
