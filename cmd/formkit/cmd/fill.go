package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/formkit/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "fill",
		Short: "Fill in a form interactively",
		Long: `Build a form definition and prompt for each field in order.

Text, number, time, slider and color fields take typed values and are
re-prompted until their rules pass. Toggles and checkboxes ask yes/no,
radio groups offer their options and file fields take comma-separated
paths. The filled values are printed as YAML.

Usage:
  formkit fill signup.yaml`,
		Usage: "formkit fill <definition>",
		Run:   runFill,
	})
}

func runFill(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("definition file is required\n\nUsage: formkit fill <definition>")
	}
	doc, form, err := loadForm(args[0], widgets.Options{})
	if err != nil {
		return err
	}
	defer form.Dispose()

	if doc.Name != "" {
		fmt.Printf("%s\n\n", doc.Name)
	}

	asked := make(map[string]bool)
	for _, e := range form.Fields() {
		if !e.Editable() {
			continue
		}
		if err := prompt(form, e, asked); err != nil {
			if err == terminal.InterruptErr {
				fmt.Println("\nCancelled.")
				return nil
			}
			return err
		}
	}

	fmt.Println()
	if !printForm(newOutput(os.Stdout), form) {
		return fmt.Errorf("form is invalid")
	}
	data, err := yaml.Marshal(formText(form))
	if err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}
	fmt.Println()
	fmt.Print(string(data))
	return nil
}

func prompt(form *widgets.Form, e widgets.Element, asked map[string]bool) error {
	label := e.Name()
	if label == "" {
		label = e.Tag()
	}

	switch x := e.(type) {
	case *widgets.Radio:
		if x.Name() == "" || asked[x.Name()] {
			return nil
		}
		asked[x.Name()] = true
		g, ok := form.Group(x.Name())
		if !ok {
			return nil
		}
		var options []string
		for _, r := range g.Radios() {
			options = append(options, r.Option())
		}
		var choice string
		q := &survey.Select{Message: label, Options: options}
		if v := g.Value(); v != "" {
			q.Default = v
		}
		if err := survey.AskOne(q, &choice); err != nil {
			return err
		}
		g.Select(choice)
		return nil

	case *widgets.Toggle:
		answer := x.Value()
		if err := survey.AskOne(&survey.Confirm{Message: label, Default: answer}, &answer); err != nil {
			return err
		}
		return x.SetAnyValue(answer)

	case *widgets.Checkbox:
		answer := x.Checked()
		if err := survey.AskOne(&survey.Confirm{Message: label, Default: answer}, &answer); err != nil {
			return err
		}
		return x.SetAnyValue(answer)

	case *widgets.Password:
		var answer string
		return survey.AskOne(&survey.Password{Message: label}, &answer, survey.WithValidator(commitText(x)))

	case *widgets.ImagePicker:
		return promptFiles(label, x.FilePicker)

	case *widgets.FilePicker:
		return promptFiles(label, x)
	}

	var answer string
	q := &survey.Input{Message: label, Default: e.Text()}
	return survey.AskOne(q, &answer, survey.WithValidator(commitText(e)))
}

// commitText returns a validator that commits each answer and reports parse
// failures and rule messages.
func commitText(e widgets.Element) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		if err := e.SetText(s); err != nil {
			return err
		}
		if msgs := e.Validate(); len(msgs) > 0 {
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return nil
	}
}

func promptFiles(label string, p *widgets.FilePicker) error {
	help := "Comma-separated paths"
	if accept := p.Accept(); len(accept) > 0 {
		help += " (" + accept.String() + ")"
	}
	var answer string
	return survey.AskOne(&survey.Input{Message: label, Help: help}, &answer, survey.WithValidator(func(ans interface{}) error {
		s, _ := ans.(string)
		var handles []widgets.Handle
		for _, path := range strings.Split(s, ",") {
			if path = strings.TrimSpace(path); path != "" {
				handles = append(handles, widgets.PathHandle(path))
			}
		}
		p.ClearValue()
		if len(handles) == 0 {
			return nil
		}
		added, err := p.Add(context.Background(), handles...)
		if err != nil {
			return err
		}
		if len(added) != len(handles) {
			return fmt.Errorf("%d of %d files were rejected", len(handles)-len(added), len(handles))
		}
		return nil
	}))
}

// formText maps each field name to its formatted value. Radio groups map to
// the selected option.
func formText(form *widgets.Form) map[string]string {
	out := make(map[string]string)
	for _, name := range form.Names() {
		if g, ok := form.Group(name); ok {
			out[name] = g.Value()
			continue
		}
		if e, ok := form.Field(name); ok {
			out[name] = e.Text()
		}
	}
	return out
}
