package typedconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/typedconfig/pkg/typedconfig"
)

func TestKind_String(t *testing.T) {
	want := []string{"array", "bool", "int", "float", "float-inclusive", "string"}
	require.Len(t, typedconfig.Kinds, len(want))
	for i, k := range typedconfig.Kinds {
		assert.Equal(t, want[i], k.String())
	}
	assert.Equal(t, "unknown", typedconfig.Kind(42).String())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    typedconfig.Kind
		wantErr bool
	}{
		{"array", typedconfig.KindArray, false},
		{"BOOL", typedconfig.KindBool, false},
		{" int ", typedconfig.KindInt, false},
		{"float", typedconfig.KindFloat, false},
		{"float-inclusive", typedconfig.KindFloatInclusive, false},
		{"float_inclusive", typedconfig.KindFloatInclusive, false},
		{"string", typedconfig.KindString, false},
		{"integer", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := typedconfig.ParseKind(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
