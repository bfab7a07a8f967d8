package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/pkg/parser"
)

func TestParseServerVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "8.0.17", want: 80017},
		{input: "5.7.30-log", want: 50730},
		{input: "5.6", want: 50600},
		{input: " 8.0.19 ", want: 80019},
		{input: "80016", want: 80016},
		{input: "", wantErr: true},
		{input: "eight", wantErr: true},
		{input: "800", wantErr: true},
		{input: "8.0.100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parser.ParseServerVersion(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatServerVersion(t *testing.T) {
	assert.Equal(t, "8.0.17", parser.FormatServerVersion(80017))
	assert.Equal(t, "5.7.30", parser.FormatServerVersion(50730))

	v, err := parser.ParseServerVersion(parser.FormatServerVersion(parser.DefaultServerVersion))
	require.NoError(t, err)
	assert.Equal(t, parser.DefaultServerVersion, v)
}
