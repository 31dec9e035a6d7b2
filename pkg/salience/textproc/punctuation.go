package textproc

// DefaultPunctuation lists the ASCII punctuation symbols used for Latin and
// Germanic scripts. Callers working with other scripts should supply their
// own list.
var DefaultPunctuation = []string{
	"!", "\"", "#", "$", "%", "&", "'", "(", ")", "*", "+", ",", "-", ".",
	"/", ":", ";", "<", "=", ">", "?", "@", "[", "\\", "]", "^", "_", "`",
	"{", "|", "}", "~",
}
