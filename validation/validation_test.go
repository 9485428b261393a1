package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	valid := []string{"+51999888777", "999888777", "+51 999 888 777", "999 888 777"}
	for _, phone := range valid {
		assert.True(t, ValidPhone(phone), phone)
	}

	invalid := []string{"", "12345", "899888777", "+519998887", "+5199988877712"}
	for _, phone := range invalid {
		assert.False(t, ValidPhone(phone), phone)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("cliente@vitanza.pe"))
	assert.True(t, ValidEmail("  cliente@vitanza.pe  "))
	assert.False(t, ValidEmail("cliente@vitanza"))
	assert.False(t, ValidEmail("cliente vitanza.pe"))
	assert.False(t, ValidEmail(""))
}

func TestValidatePassword(t *testing.T) {
	assert.Empty(t, ValidatePassword("Segura123"))

	issues := ValidatePassword("corta")
	assert.Len(t, issues, 3) // length, uppercase, digit

	assert.NotEmpty(t, ValidatePassword("sinmayuscula1"))
	assert.NotEmpty(t, ValidatePassword("SINMINUSCULA1"))
	assert.NotEmpty(t, ValidatePassword("SinNumeros"))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+51 999 888 777", FormatPhone("999888777"))
	assert.Equal(t, "+51 999 888 777", FormatPhone("+51999888777"))
	assert.Equal(t, "+51 999 888 777", FormatPhone("+51 999 888 777"))
	// Anything else passes through untouched.
	assert.Equal(t, "12345", FormatPhone("12345"))
}
