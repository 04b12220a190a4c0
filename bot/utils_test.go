package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		value    int64
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1000, "-1,000"},
		{-42, "-42"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCount(tt.value))
	}
}

func TestParseSnowflake(t *testing.T) {
	id, err := parseSnowflake("123456789012345678")
	require.NoError(t, err)
	assert.Equal(t, int64(123456789012345678), id)

	_, err = parseSnowflake("not-a-snowflake")
	assert.Error(t, err)
}

func TestParseGuildAndUser(t *testing.T) {
	gid, uid, err := parseGuildAndUser("100", "200")
	require.NoError(t, err)
	assert.Equal(t, int64(100), gid)
	assert.Equal(t, int64(200), uid)

	_, _, err = parseGuildAndUser("bad", "200")
	assert.Error(t, err)

	_, _, err = parseGuildAndUser("100", "bad")
	assert.Error(t, err)
}
