package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_Truthiness(t *testing.T) {
	cases := []struct {
		body    string
		defined bool
		truthy  bool
	}{
		{`{}`, false, false},
		{`{"v": null}`, false, false},
		{`{"v": ""}`, true, false},
		{`{"v": "0"}`, true, true},
		{`{"v": 0}`, true, false},
		{`{"v": 0.0}`, true, false},
		{`{"v": 12.5}`, true, true},
		{`{"v": false}`, true, false},
		{`{"v": true}`, true, true},
		{`{"v": "Mastercam"}`, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.body, func(t *testing.T) {
			var payload struct {
				V Field `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.body), &payload))
			assert.Equal(t, tc.defined, payload.V.Defined())
			assert.Equal(t, tc.truthy, payload.V.Truthy())
		})
	}
}

func TestField_NumericViews(t *testing.T) {
	var req ProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price": "1499.99", "quantity": 7}`), &req))

	price, ok := req.Price.Decimal()
	require.True(t, ok)
	assert.Equal(t, "1499.99", price.String())

	qty, ok := req.Quantity.Int()
	require.True(t, ok)
	assert.Equal(t, 7, qty)

	_, ok = StringField("abc").Decimal()
	assert.False(t, ok)
}

func TestParseInt(t *testing.T) {
	cases := map[string]struct {
		n  int
		ok bool
	}{
		"150":   {150, true},
		" 99.9": {99, true},
		"-3":    {-3, true},
		"12abc": {12, true},
		"abc":   {0, false},
		"":      {0, false},
		"-":     {0, false},
	}

	for in, want := range cases {
		n, ok := ParseInt(in)
		assert.Equal(t, want.ok, ok, in)
		assert.Equal(t, want.n, n, in)
	}
}

func TestProductRequest_Rules(t *testing.T) {
	var req ProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": "  hyperMILL  ", "price": 2500, "status": "active"}`), &req))

	rules := req.Rules()
	assert.Equal(t, "hyperMILL", rules.Name)
	assert.Equal(t, "2500", rules.Price)
	assert.Equal(t, "active", rules.Status)
	assert.Empty(t, rules.Quantity)
}
