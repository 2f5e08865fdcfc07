package ui

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/ratel-online/fool/fool/msg"
)

func PromptString(message string) (string, error) {
	input, err := pterm.DefaultInteractiveTextInput.WithDefaultText(strings.TrimRight(message, "\n")).Show()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// PromptDesignators reads a space separated list of card designators.
func PromptDesignators(message string) ([]string, error) {
	input, err := PromptString(message)
	if err != nil {
		return nil, err
	}
	return msg.Fields(input), nil
}

func PromptSelect(message string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.WithDefaultText(message).WithOptions(options).Show()
}
