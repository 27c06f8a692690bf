package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChampionID(t *testing.T) {
	id, err := parseChampionID(" 103 ")
	require.NoError(t, err)
	assert.Equal(t, 103, id)

	_, err = parseChampionID("ahri")
	assert.EqualError(t, err, `invalid champion id "ahri"`)
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "Ahri", truncateString("Ahri", 10))
	assert.Equal(t, "the Nine...", truncateString("the Nine-Tailed Fox", 11))
	assert.Equal(t, "Kha'Zix", truncateString("Kha'Zix", 7))
}
