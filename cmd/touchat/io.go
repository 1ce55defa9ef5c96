package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"unicode"

	"github.com/n2code/touchat"
	"golang.org/x/term"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PromptUser asks on the display stream and reads a single key from input.
// If input is a terminal and escapes are allowed it is switched to raw mode so no ENTER is required.
func PromptUser(input *os.File, display io.Writer, allowEscapeSequences bool) touchat.RequestChoice {
	return func(request string, options []string) (choice string) {
		letterToChoice := make(map[rune]string)
		var displayOptions []string

	ParseOptions:
		for _, option := range options {
			for i, letter := range option {
				if _, taken := letterToChoice[unicode.ToLower(letter)]; !taken {
					letterToChoice[unicode.ToLower(letter)] = option
					letterToChoice[unicode.ToUpper(letter)] = option
					printLetter := fmt.Sprintf("\x1B[1m\x1B[4m%c\x1B[0m", letter)
					if !allowEscapeSequences {
						printLetter = fmt.Sprintf("[%c]", letter)
					}
					displayOptions = append(displayOptions, fmt.Sprintf("%s%s%s", option[:i], printLetter, option[i+1:]))
					continue ParseOptions
				}
			}
		}

		key := make(chan rune)
		interrupt := make(chan os.Signal, 1)

		signal.Notify(interrupt, os.Interrupt)
		defer func() { signal.Reset(os.Interrupt) }()

		rawMode := false
		rawOut := func(text string) {
			if rawMode {
				fmt.Fprint(display, text)
			}
		}

		if allowEscapeSequences && isTerminal(input) {
			if oldTermState, err := term.MakeRaw(int(input.Fd())); err == nil {
				rawMode = true
				defer term.Restore(int(input.Fd()), oldTermState)
			} // else ENTER is required to confirm input -> acceptable fallback
		}
		reader := bufio.NewReader(input) //shared across retries, buffered input must survive a rejected key
		waitForKey := func() {
			in, err := reader.ReadByte()
			if err != nil { //e.g. EOF on closed input counts as abort
				interrupt <- os.Interrupt
				return
			}
			if !rawMode && in != '\n' && reader.Buffered() > 0 {
				if extra, _ := reader.ReadByte(); extra != '\n' && extra != '\r' {
					reader.ReadString('\n') //drop rest of the line
					key <- '?'
					return
				}
			}
			if rawMode && in == 3 { //Ctrl+C
				interrupt <- os.Interrupt
			} else {
				rawOut(fmt.Sprintf("%c", unicode.ToUpper(rune(in))))
				key <- rune(in)
			}
		}

		prompt := fmt.Sprintf("%s (%s): ", request, strings.Join(displayOptions, " / "))
		fmt.Fprint(display, prompt)
		for {
			go waitForKey()
			select {
			case letterPressed := <-key:
				if selection, found := letterToChoice[letterPressed]; found {
					rawOut("\r\n")
					return selection
				}
				rawOut("\a\033[1D") //bell and move cursor left by 1
				if !rawMode {
					fmt.Fprint(display, prompt)
				}
			case <-interrupt:
				fmt.Fprint(display, "<CANCELLED>\r\n")
				return touchat.ChoiceAborted
			}
		}
	}
}
