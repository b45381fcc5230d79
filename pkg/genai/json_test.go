package genai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	t.Run("should strip json code fence", func(t *testing.T) {
		// given
		text := "```json\n[{\"a\": 1}]\n```"

		// when
		result := StripFences(text)

		// then
		assert.Equal(t, "[{\"a\": 1}]", result)
	})

	t.Run("should strip plain code fence", func(t *testing.T) {
		result := StripFences("```\n{\"a\": 1}\n```")
		assert.Equal(t, "{\"a\": 1}", result)
	})

	t.Run("should leave unfenced text unchanged", func(t *testing.T) {
		result := StripFences("  {\"a\": 1}  ")
		assert.Equal(t, "{\"a\": 1}", result)
	})
}

func TestExtractArray(t *testing.T) {
	t.Run("should extract array surrounded by prose", func(t *testing.T) {
		// given
		text := "Here is your itinerary:\n[{\"day\": 1}]\nEnjoy!"

		// when
		result := ExtractArray(text)

		// then
		assert.Equal(t, "[{\"day\": 1}]", result)
	})

	t.Run("should return cleaned text when no array present", func(t *testing.T) {
		result := ExtractArray("no json here")
		assert.Equal(t, "no json here", result)
	})
}
