package add

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/tourdiary/pkg/app"
	"tableflip.dev/tourdiary/pkg/entry"
)

var templates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} : ",
	Valid:   "{{ . | green }} : ",
	Invalid: "{{ . | red }} : ",
	Success: "{{ . | bold }} : ",
}

// PromptForm asks for every field, offering the values already in f as
// defaults.
func PromptForm(f app.Form) (app.Form, error) {
	var err error
	if f.Topic, err = promptString("Topic", f.Topic, required); err != nil {
		return f, err
	}
	if f.Place, err = promptString("Place", f.Place, nil); err != nil {
		return f, err
	}
	if f.Purpose, err = promptString("Purpose", f.Purpose, nil); err != nil {
		return f, err
	}
	if f.DateTime, err = promptString("Date & Time ("+entry.LayoutLocal+")", f.DateTime, datetime); err != nil {
		return f, err
	}
	if f.Alarm, err = promptBool("Set alarm", f.Alarm); err != nil {
		return f, err
	}
	return f, nil
}

func required(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("empty")
	}
	return nil
}

func datetime(input string) error {
	if err := required(input); err != nil {
		return err
	}
	_, err := entry.ParseTime(input)
	return err
}

func promptString(label, def string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		Templates: templates,
		Validate:  validate,
		AllowEdit: true,
	}
	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return result, nil
}

func promptBool(label string, def bool) (bool, error) {
	validInput := "y/[n]"
	if def {
		validInput = "[y]/n"
	}
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s %s", label, validInput),
		Templates: templates,
		Validate: func(input string) error {
			if input == "" {
				return nil
			}
			_, err := ParseBool(input)
			return err
		},
	}
	result, err := prompt.Run()
	if err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	if result == "" {
		return def, nil
	}
	return ParseBool(result)
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
