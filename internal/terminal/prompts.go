package terminal

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// PromptYesNo asks a yes/no question and returns the answer. The default is
// used when the user presses Enter, and always when stdin is not a terminal
// so that piped or scripted runs never hang on a prompt.
func PromptYesNo(question string, defaultYes bool) (bool, error) {
	if !IsTerminal() {
		return defaultYes, nil
	}

	hint := "[Y/n]"
	if !defaultYes {
		hint = "[y/N]"
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("%s %s: ", question, hint)
		input, err := reader.ReadString('\n')
		if err != nil {
			return false, fmt.Errorf("failed to read input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Println("Please answer y or n")
	}
}

// PromptString prompts for a free-form value with a default.
func PromptString(question, defaultVal string) (string, error) {
	if !IsTerminal() {
		return defaultVal, nil
	}

	if defaultVal != "" {
		fmt.Printf("%s [%s]: ", question, defaultVal)
	} else {
		fmt.Printf("%s: ", question)
	}

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal, nil
	}
	return input, nil
}

// PromptChoice displays a numbered menu and returns the selected index (0-based).
// The default option is selected if the user presses Enter.
func PromptChoice(question string, options []string, defaultIndex int) (int, error) {
	if !IsTerminal() {
		return defaultIndex, nil
	}

	fmt.Println(question)
	for i, opt := range options {
		fmt.Printf("  %d. %s\n", i+1, opt)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("Selection [%d]: ", defaultIndex+1)
		input, err := reader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			return defaultIndex, nil
		}

		num, err := strconv.Atoi(input)
		if err != nil || num < 1 || num > len(options) {
			fmt.Printf("Please enter a number between 1 and %d\n", len(options))
			continue
		}

		return num - 1, nil
	}
}
