package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "United states", Capitalize("united states"))
	assert.Equal(t, "North america", Capitalize("NORTH AMERICA"))
	assert.Equal(t, "Sao paulo", Capitalize("sao paulo"))
	assert.Equal(t, "Émile", Capitalize("émile"))
}
