package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequired(t *testing.T) {
	assert.Error(t, validateRequired(""))
	assert.NoError(t, validateRequired("Sparkling Cola"))
}

func TestValidatePositiveFloat(t *testing.T) {
	assert.NoError(t, validatePositiveFloat(""))
	assert.NoError(t, validatePositiveFloat("2.50"))
	assert.Error(t, validatePositiveFloat("0"))
	assert.Error(t, validatePositiveFloat("-1"))
	assert.Error(t, validatePositiveFloat("abc"))
}

func TestValidateNonNegativeFloat(t *testing.T) {
	assert.NoError(t, validateNonNegativeFloat(""))
	assert.NoError(t, validateNonNegativeFloat("0"))
	assert.NoError(t, validateNonNegativeFloat("2000"))
	assert.Error(t, validateNonNegativeFloat("-5"))
	assert.Error(t, validateNonNegativeFloat("lots"))
}

func TestValidateNonNegativeInt(t *testing.T) {
	assert.NoError(t, validateNonNegativeInt(""))
	assert.NoError(t, validateNonNegativeInt("600"))
	assert.Error(t, validateNonNegativeInt("-1"))
	assert.Error(t, validateNonNegativeInt("2.5"))
}

func TestParseFloatField(t *testing.T) {
	v, err := parseFloatField("")
	assert.NoError(t, err)
	assert.Zero(t, v)

	v, err = parseFloatField("2.50")
	assert.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = parseFloatField("nope")
	assert.Error(t, err)
}

func TestParseIntField(t *testing.T) {
	v, err := parseIntField("")
	assert.NoError(t, err)
	assert.Zero(t, v)

	v, err = parseIntField("600")
	assert.NoError(t, err)
	assert.Equal(t, 600, v)
}
