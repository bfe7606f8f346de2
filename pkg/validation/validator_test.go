package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/narwhalmedia/tracker/pkg/errors"
)

func init() {
	RegisterEnum("testcolor", "red", "green")
}

type sample struct {
	Name  string  `json:"name" validate:"required"`
	Color string  `json:"color" validate:"testcolor"`
	Score float64 `json:"score" validate:"gte=0,lte=10"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantMsg string
	}{
		{"valid lower bound", sample{Name: "a", Color: "red", Score: 0}, ""},
		{"valid upper bound", sample{Name: "a", Color: "green", Score: 10}, ""},
		{"missing name", sample{Color: "red"}, "name is required"},
		{"bad enum", sample{Name: "a", Color: "blue"}, `color must be one of: red, green (got "blue")`},
		{"above range", sample{Name: "a", Color: "red", Score: 10.1}, "score must be less than or equal to 10"},
		{"below range", sample{Name: "a", Color: "red", Score: -0.1}, "score must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestRequestValidationError_Joined(t *testing.T) {
	err := ValidateStruct(sample{Color: "blue", Score: 11})
	require.Error(t, err)

	var verr *RequestValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors(), 3)
	assert.Equal(t, "name", verr.Errors()[0].Field)
	assert.True(t, pkgerrors.IsValidation(verr.AppError()))
}
