package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Jane Smith", CleanString("  Jane Smith \n"))
	assert.Equal(t, "jane@student.edu", CleanString(" Jane@Student.edu ", true))
	assert.Equal(t, "", CleanString("   "))
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{"empty query", "  ", []string{"anything"}, true},
		{"no fields", "x", nil, false},
		{"case", "SMITH", []string{"S2023002", "Jane Smith"}, true},
		{"trimmed", " smith ", []string{"Jane Smith"}, true},
		{"miss", "doe", []string{"Jane Smith", "jane.smith@student.edu"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsFold(tt.query, tt.fields...); got != tt.want {
				t.Errorf("ContainsFold() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidators(t *testing.T) {
	type form struct {
		ID   string `json:"id" validate:"required,alphanum_"`
		Date string `json:"date" validate:"omitempty,isodate"`
		Note string `json:"-" validate:"required"`
	}

	validate := validator.New()
	translator := NewTranslator()
	InitValidators(validate, translator)

	require.NoError(t, validate.Struct(form{ID: "S_2023", Date: "2023-10-12", Note: "x"}))

	err := validate.Struct(form{ID: "S-1", Date: "12/10/2023", Note: "x"})
	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok, "Struct() error = %T", err)
	assert.Equal(t, map[string]string{
		"id":   alphaNumUnderText,
		"date": isoDateText,
	}, TranslateErrors(verrs, translator))

	err = validate.Struct(form{Note: "x"})
	verrs, ok = err.(validator.ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"id": requiredText}, TranslateErrors(verrs, translator))
}
