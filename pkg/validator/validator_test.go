package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productInput struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=10"`
	Price    string `json:"price" validate:"omitempty,positive_number"`
	Quantity string `json:"quantity" validate:"omitempty,number"`
	Image    string `json:"image" validate:"omitempty,url"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
	Category string `json:"category" validate:"required"`
}

func TestValidate_Passes(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&productInput{Name: "CAM", Price: "10.5", Quantity: "3", Image: "https://example.com/a.png", Status: "active", Category: "CAM"})
	assert.NoError(t, err)
}

func TestFormatValidationErrors_UsesJSONNames(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&productInput{Name: "X", Price: "-1", Quantity: "-2", Image: "not a url", Status: "archived"})
	require.Error(t, err)

	messages := v.FormatValidationErrors(err)
	assert.Equal(t, []string{
		"name must be at least 2 characters",
		"price must be a positive number",
		"quantity must be a non-negative integer",
		"image must be a valid URL",
		"status must be one of: active, inactive",
		"category is required",
	}, messages)
}

func TestPositiveNumber(t *testing.T) {
	v := NewValidator()
	for _, price := range []string{"0", "abc", "-0.01"} {
		assert.Error(t, v.Validate(&productInput{Price: price, Category: "CAD"}), price)
	}
	assert.NoError(t, v.Validate(&productInput{Price: "0.01", Category: "CAD"}))
}
