package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Delay paces the output so a human can follow the bots.
var Delay = 500 * time.Millisecond

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	pterm.Println(args...)
	time.Sleep(Delay)
}

// Print writes text that already ends with a line break.
func Print(text string) {
	pterm.Print(text)
	time.Sleep(Delay)
}

func Banner(title string, text string) {
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTitle(pterm.LightYellow(title)).WithTitleTopCenter()
	box.Println(strings.TrimRight(text, "\n"))
}

func Info(text string) {
	pterm.Info.Println(strings.TrimRight(text, "\n"))
}

func Success(text string) {
	pterm.Success.Println(strings.TrimRight(text, "\n"))
}

func Error(err error) {
	pterm.Error.Println(err)
}
