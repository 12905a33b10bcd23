package ai

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStatBlockFromFencedReply(t *testing.T) {
	raw := "Here you go:\n```json\n{\"name\":\"Grak\"}\n```\nHope that helps!"

	got, err := ExtractStatBlock(raw)
	require.NoError(t, err)
	assert.Equal(t, "Grak", got.Name)
	assert.Zero(t, got.Level)
}

func TestExtractStatBlockFullBlock(t *testing.T) {
	raw := `{
		"name": "Sergeant Vale",
		"race": "Humanoid",
		"char_class": "Fighter",
		"level": 4,
		"alignment": "Lawful Neutral",
		"strength": 16,
		"dexterity": 12,
		"constitution": 14,
		"intelligence": 10,
		"wisdom": 11,
		"charisma": 10,
		"armor_class": 16,
		"max_hp": 36,
		"speed": 30,
		"notes": "Longsword +5 to hit, 1d8+3 slashing.",
		"reasoning": "Veteran guard, chain mail and shield."
	}`

	got, err := ExtractStatBlock(raw)
	require.NoError(t, err)
	assert.Equal(t, "Sergeant Vale", got.Name)
	assert.Equal(t, 4, got.Level)
	assert.Equal(t, 16, got.Strength)
	assert.Equal(t, 36, got.MaxHP)
	assert.Contains(t, got.Notes, "1d8+3")
}

func TestExtractStatBlockGreedyBraces(t *testing.T) {
	// Nested braces survive because the match runs first '{' to last '}'.
	raw := `Sure! {"name":"Mim","notes":"casts {shield} at will"} done`

	got, err := ExtractStatBlock(raw)
	require.NoError(t, err)
	assert.Equal(t, "Mim", got.Name)
	assert.Equal(t, "casts {shield} at will", got.Notes)
}

func TestExtractStatBlockCoercesLooseNumbers(t *testing.T) {
	raw := `{"name":"Ogre","level":3.0,"max_hp":"59","speed":"fast"}`

	got, err := ExtractStatBlock(raw)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Level)
	assert.Equal(t, 59, got.MaxHP)
	assert.Zero(t, got.Speed)
}

func TestExtractStatBlockNoBraces(t *testing.T) {
	raw := strings.Repeat("the model rambled on without any JSON. ", 20)

	_, err := ExtractStatBlock(raw)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, raw[:300], parseErr.Raw)
}

func TestExtractStatBlockUnparseableObject(t *testing.T) {
	_, err := ExtractStatBlock(`{"name": "Grak",}`)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, parseErr.Raw, "Grak")
}

func TestExtractStatBlockShortInputKeptVerbatim(t *testing.T) {
	_, err := ExtractStatBlock("nope")

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "nope", parseErr.Raw)
}
