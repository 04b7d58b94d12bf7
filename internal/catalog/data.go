package catalog

// Default returns the curated kaomoji catalogue shipped with the build.
// Declaration order is display order and also fixes index walk order, so
// edits here change which entry wins a slug collision.
func Default() Catalogue {
	return Catalogue{
		{
			Name: "Happy & Joyful",
			SubCategories: []SubCategory{
				{
					Name:        "Smiles",
					Description: "Gentle, everyday happy faces for friendly messages.",
					Items: []Item{
						{Name: "Happy", Value: "(^ω^)"},
						{Name: "Grinning", Value: "(´∀｀)"},
						{Name: "Smiling", Value: "(*^▽^*)"},
						{Name: "Content", Value: "(´｡• ᵕ •｡`)"},
					},
				},
				{
					Name:        "Celebration",
					Description: "Big, energetic joy for good news and victories.",
					Items: []Item{
						{Name: "Laughing", Value: "(>▽<)"},
						{Name: "Joyful", Value: "＼(￣▽￣)／", IsLong: true},
						{Name: "Excited", Value: "ヽ(・∀・)ﾉ", IsLong: true},
						{Name: "Beaming", Value: "(★ω★)"},
					},
				},
			},
		},
		{
			Name: "Sad & Crying",
			SubCategories: []SubCategory{
				{
					Name:        "Tears",
					Description: "From a quiet sniffle to full streaming tears.",
					Items: []Item{
						{Name: "Crying", Value: "(;´Д｀)"},
						{Name: "Sobbing", Value: "(T_T)"},
						{Name: "Sad", Value: "｡･ﾟﾟ･(>д<)･ﾟﾟ･｡", IsLong: true},
						{Name: "Tears", Value: "(´;ω;`)"},
					},
				},
				{
					Name:        "Low Spirits",
					Description: "Down, defeated, and heartbroken moods.",
					Items: []Item{
						{Name: "Depressed", Value: "(-_-)"},
						{Name: "Heartbroken", Value: "(╯︵╰,)"},
						{Name: "Gloomy", Value: "（；＿；）"},
					},
				},
			},
		},
		{
			Name: "Angry & Annoyed",
			SubCategories: []SubCategory{
				{
					Name:        "Rage",
					Description: "Full-volume anger, flipped tables included.",
					Items: []Item{
						{Name: "Angry", Value: "(＃`Д´)"},
						{Name: "Furious", Value: "ヽ( `д´*)ノ", IsLong: true},
						{Name: "Table Flip", Value: "(╯°□°）╯︵ ┻━┻", IsLong: true},
						{Name: "Mad", Value: "(╬ Ò﹏Ó)"},
					},
				},
				{
					Name:        "Irritation",
					Description: "Simmering annoyance short of an outburst.",
					Items: []Item{
						{Name: "Frustrated", Value: "(>_<)"},
						{Name: "Annoyed", Value: "(-`д´-)"},
						{Name: "Pissed", Value: "(`⌒´メ)"},
					},
				},
			},
		},
		{
			Name: "Love & Affection",
			SubCategories: []SubCategory{
				{
					Name:        "Romance",
					Description: "Hearts, kisses, and open adoration.",
					Items: []Item{
						{Name: "Love", Value: "(｡♥‿♥｡)"},
						{Name: "Kiss", Value: "(づ￣ ³￣)づ", IsLong: true},
						{Name: "In Love", Value: "(*♡∀♡)"},
						{Name: "Adore", Value: "(´,,•ω•,,)♡"},
					},
				},
				{
					Name:        "Warmth",
					Description: "Softer affection: hugs, winks, and blushes.",
					Items: []Item{
						{Name: "Blushing", Value: "⁄(⁄ ⁄•⁄-⁄•⁄ ⁄)⁄", IsLong: true},
						{Name: "Hug", Value: "(ɔˆ ³(ˆ⌣ˆc)"},
						{Name: "Wink", Value: "(^_-)"},
					},
				},
			},
		},
		{
			Name: "Actions",
			SubCategories: []SubCategory{
				{
					Name:        "On the Move",
					Description: "Kaomoji caught mid-motion.",
					Items: []Item{
						{Name: "Dancing", Value: "♪~ ᕕ(ᐛ)ᕗ"},
						{Name: "Running", Value: "ε=ε=┌( >_<)┘", IsLong: true},
						{Name: "Hiding", Value: "┬┴┬┴┤(･_├┬┴┬┴", IsLong: true},
						{Name: "Waving", Value: "( ´ ▽ ` )ﾉ"},
					},
				},
				{
					Name:        "Everyday Life",
					Description: "Working, resting, and thinking it over.",
					Items: []Item{
						{Name: "Writing", Value: "φ(．．;)"},
						{Name: "Sleeping", Value: "(－_－) zzZ"},
						{Name: "Apologizing", Value: "m(_ _)m"},
						{Name: "Thinking", Value: "(・－・)?"},
					},
				},
			},
		},
		{
			Name: "Animals",
			SubCategories: []SubCategory{
				{
					Name:        "Pets",
					Description: "The companions: cats, dogs, and rabbits.",
					Items: []Item{
						{Name: "Cat", Value: "(=^･ω･^=)"},
						{Name: "Dog", Value: "(´・(oo)・｀)"},
						{Name: "Rabbit", Value: "（・ｘ・）"},
					},
				},
				{
					Name:        "Wildlife",
					Description: "Creatures from the woods, sky, and sea.",
					Items: []Item{
						{Name: "Bear", Value: "(´(エ)｀)"},
						{Name: "Pig", Value: "(´・(oo)・｀)"},
						{Name: "Bird", Value: "（・⊝・）"},
						{Name: "Fish", Value: "<・)))><<"},
						{Name: "Owl", Value: "(・o・)"},
					},
				},
			},
		},
		{
			Name: "Miscellaneous",
			SubCategories: []SubCategory{
				{
					Name:        "Reactions",
					Description: "Shrugs, stares, and startled faces for any thread.",
					Items: []Item{
						{Name: "Shrug", Value: "¯\\_(ツ)_/¯"},
						{Name: "Confused", Value: "(°_°)"},
						{Name: "Surprised", Value: "(o_O)"},
						{Name: "Scared", Value: "(((;°Д°)))"},
					},
				},
				{
					Name:        "Attitude",
					Description: "Cool, dismissive, and a little bit magic.",
					Items: []Item{
						{Name: "Magic", Value: "୧(﹒︠ᴗ﹒︡)୨"},
						{Name: "Cool Glasses", Value: "(⌐■_■)"},
						{Name: "Meh", Value: "┐(￣ヘ￣)┌"},
						{Name: "Whatever", Value: "╮( ˘ ､ ˘ )╭"},
					},
				},
			},
		},
	}
}
