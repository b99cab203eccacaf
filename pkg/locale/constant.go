package locale

const (
	// EN is English.
	EN = "en"
	// VI is Vietnamese.
	VI = "vi"
)

// LangList contains all supported language codes.
var LangList = []string{EN, VI}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = EN

// Locale is the context key holding the request language.
type Locale struct{}
