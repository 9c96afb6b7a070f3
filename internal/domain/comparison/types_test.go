package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procompare/internal/core/apperror"
)

func TestParseDataType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  DataType
		ok    bool
	}{
		{"canonical summary", "SUMMARY", DataTypeSummary, true},
		{"lowercase monthly", "monthly", DataTypeMonthly, true},
		{"mixed case all", "All", DataTypeAll, true},
		{"unknown value", "WEEKLY", "", false},
		{"blank", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDataType(tt.input)
			if !tt.ok {
				require.Error(t, err)
				appErr, isApp := apperror.AsAppError(err)
				require.True(t, isApp)
				assert.Equal(t, apperror.CodeInvalidDataType, appErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
