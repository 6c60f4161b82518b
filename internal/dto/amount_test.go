package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "number", input: `1200.5`, want: 1200.5},
		{name: "integer", input: `3000`, want: 3000},
		{name: "numeric string", input: `"1200.5"`, want: 1200.5},
		{name: "padded string", input: `" 42 "`, want: 42},
		{name: "negative", input: `-10`, want: -10},
		{name: "word", input: `"lots"`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
		{name: "null leaves zero", input: `null`, want: 0},
		{name: "infinity string", input: `"Infinity"`, wantErr: true},
		{name: "short infinity string", input: `"Inf"`, wantErr: true},
		{name: "negative infinity string", input: `"-inf"`, wantErr: true},
		{name: "nan string", input: `"NaN"`, wantErr: true},
		{name: "number out of range", input: `1e999`, wantErr: true},
		{name: "largest finite", input: `1e308`, want: 1e308},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.input), &a)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, float64(a))
		})
	}
}

func TestCalculateBudgetRequest_Decode(t *testing.T) {
	body := `{"email":"a@b.c","income":"3000","expenses":1000,"continent":"Europe","country":"France",
		"expense_categories":{"physiological":"1200","social":300}}`

	var req CalculateBudgetRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, 3000.0, req.Income.Float64())
	assert.Equal(t, 1000.0, req.Expenses.Float64())
	assert.Nil(t, req.SavingsGoal)
	assert.Equal(t, 0.0, req.SavingsGoal.Float64())
	require.NotNil(t, req.ExpenseCategories)
	assert.Equal(t, Amount(1200), req.ExpenseCategories.Physiological)
	assert.Equal(t, Amount(0), req.ExpenseCategories.Safety)
	assert.Equal(t, Amount(300), req.ExpenseCategories.Social)
}
