package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputs(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]string
		wantErr bool
	}{
		{name: "empty", pairs: nil, want: map[string]string{}},
		{
			name:  "simple pairs",
			pairs: []string{"vm_name=test-vm", "cpu_count=2"},
			want:  map[string]string{"vm_name": "test-vm", "cpu_count": "2"},
		},
		{
			name:  "value containing equals",
			pairs: []string{"connection=host=db;port=5432"},
			want:  map[string]string{"connection": "host=db;port=5432"},
		},
		{
			name:  "empty value allowed",
			pairs: []string{"flag="},
			want:  map[string]string{"flag": ""},
		},
		{name: "missing equals", pairs: []string{"no-separator"}, wantErr: true},
		{name: "empty key", pairs: []string{"=value"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInputs(tt.pairs)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
