package numeric

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.234,56", 1234.56},
		{"10.000", 10000},
		{"1.234.567", 1234567},
		{"1234.56", 1234.56},
		{"0,5", 0.5},
		{"550", 550},
		{" 42 ", 42},
		{"-1.000,25", -1000.25},
	}

	for _, tc := range cases {
		got, err := ParseDecimal(tc.in)
		require.NoError(t, err, "entrada %q", tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, "entrada %q", tc.in)
	}
}

func TestParseDecimalInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "1,2,3", "12.34.5", "NaN", "Inf"} {
		_, err := ParseDecimal(in)
		assert.Error(t, err, "entrada %q", in)
	}
}

func TestDecimalUnmarshalJSON(t *testing.T) {
	var body struct {
		Amount Decimal `json:"amount"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"amount": 1234.56}`), &body))
	assert.InDelta(t, 1234.56, body.Amount.Float64(), 1e-9)

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "1.234,56"}`), &body))
	assert.InDelta(t, 1234.56, body.Amount.Float64(), 1e-9)

	assert.Error(t, json.Unmarshal([]byte(`{"amount": "abc"}`), &body))
}
