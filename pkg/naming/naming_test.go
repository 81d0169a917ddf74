package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePreferences(t *testing.T) {
	t.Run("no preferences", func(t *testing.T) {
		assert.Empty(t, EncodePreferences("", ""))
	})

	t.Run("open to all emits nothing", func(t *testing.T) {
		assert.Empty(t, EncodePreferences("", StyleOpenToAll))
	})

	t.Run("unknown values are ignored", func(t *testing.T) {
		assert.Empty(t, EncodePreferences("Sarcastic", "Three words"))
	})

	t.Run("tone then style", func(t *testing.T) {
		fragments := EncodePreferences(ToneEdgy, StyleTwoWordCombo)
		require.Len(t, fragments, 2)
		assert.Contains(t, fragments[0], "Edgy")
		assert.Contains(t, fragments[0], "provocative")
		assert.Contains(t, fragments[1], "exactly two words")
	})

	t.Run("every tone has an instruction", func(t *testing.T) {
		for _, tone := range []string{ToneFunny, ToneTrendy, ToneMinimalist, ToneStraightforward, ToneEdgy} {
			assert.Len(t, EncodePreferences(tone, ""), 1, tone)
		}
	})

	t.Run("pure", func(t *testing.T) {
		first := EncodePreferences(ToneFunny, StylePhrase)
		second := EncodePreferences(ToneFunny, StylePhrase)
		assert.Equal(t, first, second)
	})
}

func TestValidToneAndStyle(t *testing.T) {
	assert.True(t, ValidTone(""))
	assert.True(t, ValidTone(ToneTrendy))
	assert.False(t, ValidTone("trendy"))

	assert.True(t, ValidStyle(""))
	assert.True(t, ValidStyle(StyleOpenToAll))
	assert.True(t, ValidStyle(StyleOneWord))
	assert.False(t, ValidStyle("Two words"))
}

func TestBuildPrompt(t *testing.T) {
	description := "AI-powered resume builder for Gen Z professionals"

	for _, flavor := range []Flavor{FlavorConcise, FlavorDetailed} {
		t.Run(string(flavor), func(t *testing.T) {
			prompt, err := BuildPrompt(flavor, description, Preferences{Tone: ToneMinimalist, Style: StyleOneWord})
			require.NoError(t, err)

			assert.Contains(t, prompt, description)
			assert.Contains(t, prompt, "Descriptive")
			assert.Contains(t, prompt, "Phrase-Based")
			assert.Contains(t, prompt, "Humorous")
			assert.Contains(t, prompt, "telephone test")
			assert.Contains(t, prompt, "tofu")
			assert.Contains(t, prompt, "**Tone Preference**: Minimalist")
			assert.Contains(t, prompt, "**Style Preference**: One word")
			assert.Contains(t, prompt, `"rationale"`)
		})
	}
}

func TestBuildPromptSharesContract(t *testing.T) {
	concise, err := BuildPrompt(FlavorConcise, "a coffee subscription for remote teams", Preferences{})
	require.NoError(t, err)
	detailed, err := BuildPrompt(FlavorDetailed, "a coffee subscription for remote teams", Preferences{})
	require.NoError(t, err)

	contract := concise[strings.Index(concise, "Respond with valid JSON only"):]
	assert.NotEmpty(t, contract)
	assert.True(t, strings.HasSuffix(detailed, contract))
	assert.NotContains(t, concise, "Preference**")
}

func TestBuildPromptErrors(t *testing.T) {
	_, err := BuildPrompt(FlavorConcise, "   ", Preferences{})
	assert.Error(t, err)

	_, err = BuildPrompt(Flavor("poetic"), "a coffee subscription", Preferences{})
	assert.Error(t, err)
}

func TestBuildSimilarDescription(t *testing.T) {
	got := BuildSimilarDescription("brewly.com", " coffee for remote teams ")
	assert.Equal(t, `Similar to "brewly.com" - coffee for remote teams. Generate alternatives that maintain the same essence.`, got)
}
