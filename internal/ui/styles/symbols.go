package styles

// Symbols holds the message prefixes based on emoji configuration.
type Symbols struct {
	Success string
	Error   string
	Info    string
	Working string
	Warning string
}

var emojiSymbols = Symbols{
	Success: "✅ ",
	Error:   "❌ ",
	Info:    "ℹ️  ",
	Working: "🔄 ",
	Warning: "⚠️  ",
}

// plainSymbols is the empty set used when show_emoji is off.
var plainSymbols = Symbols{}

// currentSymbols holds the active symbol set
var currentSymbols = emojiSymbols

// SetEmoji enables or disables emoji message prefixes.
func SetEmoji(enabled bool) {
	if enabled {
		currentSymbols = emojiSymbols
	} else {
		currentSymbols = plainSymbols
	}
}

// CurrentSymbols returns the active symbol set.
func CurrentSymbols() Symbols {
	return currentSymbols
}
