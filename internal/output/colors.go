package output

// select graphic rendition parameters, see ECMA-48
const (
	sgrReset = "0"
	sgrDim   = "2"
	sgrRed   = "31"
)

func sgr(parameter string, text string) string {
	return "\x1B[" + parameter + "m" + text + "\x1B[" + sgrReset + "m"
}

// TerminalFormatAsDim renders verbose details less prominently.
func TerminalFormatAsDim(text string) string {
	return sgr(sgrDim, text)
}

func TerminalFormatAsError(text string) string {
	return sgr(sgrRed, text)
}
