package library

// Symbols returns the curated symbol library sections.
func Symbols() []Section {
	return []Section{
		{
			Name: "Arrows",
			Glyphs: []Glyph{
				{Name: "Left Arrow", Value: "←"},
				{Name: "Right Arrow", Value: "→"},
				{Name: "Up Arrow", Value: "↑"},
				{Name: "Down Arrow", Value: "↓"},
				{Name: "Left Right Arrow", Value: "↔"},
				{Name: "Heavy Round Arrow", Value: "➜"},
				{Name: "Curved Arrow", Value: "↪"},
			},
		},
		{
			Name: "Stars & Shapes",
			Glyphs: []Glyph{
				{Name: "Black Star", Value: "★"},
				{Name: "White Star", Value: "☆"},
				{Name: "Sparkle", Value: "❇"},
				{Name: "Black Circle", Value: "●"},
				{Name: "White Circle", Value: "○"},
				{Name: "Black Square", Value: "■"},
				{Name: "Diamond", Value: "◆"},
			},
		},
		{
			Name: "Currency",
			Glyphs: []Glyph{
				{Name: "Dollar Sign", Value: "$"},
				{Name: "Euro Sign", Value: "€"},
				{Name: "Pound Sign", Value: "£"},
				{Name: "Yen Sign", Value: "¥"},
				{Name: "Won Sign", Value: "₩"},
				{Name: "Bitcoin Sign", Value: "₿"},
			},
		},
		{
			Name: "Math & Technical",
			Glyphs: []Glyph{
				{Name: "Infinity", Value: "∞"},
				{Name: "Plus Minus", Value: "±"},
				{Name: "Not Equal", Value: "≠"},
				{Name: "Approximately", Value: "≈"},
				{Name: "Square Root", Value: "√"},
				{Name: "Summation", Value: "∑"},
				{Name: "Degree Sign", Value: "°"},
				{Name: "Micro Sign", Value: "µ"},
			},
		},
		{
			Name: "Punctuation & Legal",
			Glyphs: []Glyph{
				{Name: "Copyright", Value: "©"},
				{Name: "Registered", Value: "®"},
				{Name: "Trademark", Value: "™"},
				{Name: "Section Sign", Value: "§"},
				{Name: "Pilcrow", Value: "¶"},
				{Name: "Dagger", Value: "†"},
				{Name: "Interrobang", Value: "‽"},
			},
		},
	}
}
