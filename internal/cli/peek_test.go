package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOffset(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected int64
		wantErr  bool
	}{
		{name: "zero", in: "0", expected: 0},
		{name: "decimal", in: "1234", expected: 1234},
		{name: "hex", in: "0x10", expected: 16},
		{name: "hex upper", in: "0XFF", expected: 255},
		{name: "negative", in: "-4", wantErr: true},
		{name: "garbage", in: "ten", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseOffset(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}
