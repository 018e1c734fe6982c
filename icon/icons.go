package icon

// Icon identifies a UI symbol.
type Icon int

// Registered icons.
const (
	Success Icon = iota + 1
	Fail
	Warn
	Progress
	Question
	Search
	Source
	Play
	Episode
	History
	Cache
	Link
	Star
	Trash
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		kaomoji: "(＾▽＾)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(⊙_⊙)",
		squares: "🟨",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(・_・ヾ",
		squares: "🟦",
	},
	Question: {
		emoji:   "❓",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・?)",
		squares: "🟪",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   ">",
		kaomoji: "(ಠ_ಠ)",
		squares: "🔲",
	},
	Source: {
		emoji:   "📡",
		nerd:    "",
		plain:   "@",
		kaomoji: "( ͡° ͜ʖ ͡°)",
		squares: "🔳",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "🟩",
	},
	Episode: {
		emoji:   "🎞️",
		nerd:    "",
		plain:   "#",
		kaomoji: "(◕‿◕)",
		squares: "⬜",
	},
	History: {
		emoji:   "🕘",
		nerd:    "",
		plain:   "*",
		kaomoji: "(´・ω・`)",
		squares: "🟫",
	},
	Cache: {
		emoji:   "📦",
		nerd:    "",
		plain:   "=",
		kaomoji: "(￣▽￣)",
		squares: "🟧",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "&",
		kaomoji: "(・ω・)ノ",
		squares: "🔗",
	},
	Star: {
		emoji:   "⭐",
		nerd:    "",
		plain:   "*",
		kaomoji: "(☆▽☆)",
		squares: "🟨",
	},
	Trash: {
		emoji:   "🗑️",
		nerd:    "",
		plain:   "-",
		kaomoji: "(╯°□°)╯",
		squares: "⬛",
	},
}
