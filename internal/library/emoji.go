package library

// Emoji returns the curated emoji library sections.
func Emoji() []Section {
	return []Section{
		{
			Name: "Smileys & Emotion",
			Glyphs: []Glyph{
				{Name: "Grinning Face", Value: "😀"},
				{Name: "Face with Tears of Joy", Value: "😂"},
				{Name: "Smiling Face with Hearts", Value: "🥰"},
				{Name: "Winking Face", Value: "😉"},
				{Name: "Thinking Face", Value: "🤔"},
				{Name: "Loudly Crying Face", Value: "😭"},
				{Name: "Angry Face", Value: "😠"},
				{Name: "Pleading Face", Value: "🥺"},
				{Name: "Smiling Face with Sunglasses", Value: "😎"},
				{Name: "Upside-Down Face", Value: "🙃"},
			},
		},
		{
			Name: "Animals & Nature",
			Glyphs: []Glyph{
				{Name: "Cat Face", Value: "🐱"},
				{Name: "Dog Face", Value: "🐶"},
				{Name: "Rabbit Face", Value: "🐰"},
				{Name: "Fox", Value: "🦊"},
				{Name: "Owl", Value: "🦉"},
				{Name: "Cherry Blossom", Value: "🌸"},
				{Name: "Sun", Value: "☀️"},
				{Name: "Crescent Moon", Value: "🌙"},
				{Name: "Star", Value: "⭐"},
				{Name: "Rainbow", Value: "🌈"},
			},
		},
		{
			Name: "Food & Drink",
			Glyphs: []Glyph{
				{Name: "Bento Box", Value: "🍱"},
				{Name: "Sushi", Value: "🍣"},
				{Name: "Ramen", Value: "🍜"},
				{Name: "Rice Ball", Value: "🍙"},
				{Name: "Dango", Value: "🍡"},
				{Name: "Hot Beverage", Value: "☕"},
				{Name: "Bubble Tea", Value: "🧋"},
				{Name: "Shortcake", Value: "🍰"},
			},
		},
		{
			Name: "Hearts & Symbols",
			Glyphs: []Glyph{
				{Name: "Red Heart", Value: "❤️"},
				{Name: "Sparkling Heart", Value: "💖"},
				{Name: "Two Hearts", Value: "💕"},
				{Name: "Broken Heart", Value: "💔"},
				{Name: "Sparkles", Value: "✨"},
				{Name: "Fire", Value: "🔥"},
				{Name: "Hundred Points", Value: "💯"},
				{Name: "Party Popper", Value: "🎉"},
			},
		},
	}
}
