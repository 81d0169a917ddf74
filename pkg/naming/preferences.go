package naming

// Tone values accepted as tonePreference.
const (
	ToneFunny           = "Funny"
	ToneTrendy          = "Trendy"
	ToneMinimalist      = "Minimalist"
	ToneStraightforward = "Straightforward"
	ToneEdgy            = "Edgy"
)

// Style values accepted as stylePreference.
const (
	StyleOpenToAll    = "Open to All"
	StyleOneWord      = "One word"
	StylePhrase       = "Phrase"
	StyleTwoWordCombo = "Two Word Combo"
)

var toneInstructions = map[string]string{
	ToneFunny:           "Focus on humorous, witty, and meme-worthy names that make people smile and are highly shareable.",
	ToneTrendy:          "Use current slang, pop culture references, and trending phrases that resonate with today's culture.",
	ToneMinimalist:      "Keep names clean, simple, and elegant with minimal words that are easy to say.",
	ToneStraightforward: "Create clear, direct names that immediately convey the purpose without confusion.",
	ToneEdgy:            "Use bold, provocative, or unconventional names that stand out and grab attention.",
}

// "Open to All" has no entry: it places no constraint on the output.
var styleInstructions = map[string]string{
	StyleOneWord:      "Generate single-word domain names only that are memorable and brandable.",
	StylePhrase:       "Create phrase-based names with multiple words that form complete thoughts or culturally relevant expressions.",
	StyleTwoWordCombo: "Combine exactly two words to create compound domain names that are easy to remember.",
}

// Preferences are the optional tone and style selections of a generation request.
type Preferences struct {
	Tone  string
	Style string
}

// ValidTone reports whether tone is empty or one of the known tone values.
func ValidTone(tone string) bool {
	if tone == "" {
		return true
	}
	_, ok := toneInstructions[tone]
	return ok
}

// ValidStyle reports whether style is empty or one of the known style values.
func ValidStyle(style string) bool {
	if style == "" || style == StyleOpenToAll {
		return true
	}
	_, ok := styleInstructions[style]
	return ok
}

// EncodePreferences turns tone and style selections into guidance fragments
// for the prompt. Unknown or empty values produce no fragment.
func EncodePreferences(tone, style string) []string {
	var fragments []string
	if instruction, ok := toneInstructions[tone]; ok {
		fragments = append(fragments, "**Tone Preference**: "+tone+" - "+instruction)
	}
	if instruction, ok := styleInstructions[style]; ok {
		fragments = append(fragments, "**Style Preference**: "+style+" - "+instruction)
	}
	return fragments
}

// Encode is EncodePreferences for p.
func (p Preferences) Encode() []string {
	return EncodePreferences(p.Tone, p.Style)
}
