package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/muesli/termenv"

	"github.com/go-drift/formkit/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Show field values and validity",
		Long: `Build a form definition and print every field with its tag, committed
value and validation state.

Trailing name=value arguments are committed before validation, parsed the
same way as the field's "value" attribute.

Usage:
  formkit inspect signup.yaml
  formkit inspect signup.yaml nick=ada volume=40`,
		Usage: "formkit inspect <definition> [name=value ...]",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("definition file is required\n\nUsage: formkit inspect <definition> [name=value ...]")
	}
	_, form, err := loadForm(args[0], widgets.Options{})
	if err != nil {
		return err
	}
	defer form.Dispose()

	if err := assign(form, args[1:]); err != nil {
		return err
	}
	if !printForm(newOutput(os.Stdout), form) {
		return fmt.Errorf("form is invalid")
	}
	return nil
}

// assign commits name=value pairs.
func assign(form *widgets.Form, pairs []string) error {
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("expected name=value, got %q", pair)
		}
		if g, ok := form.Group(name); ok {
			if !g.Select(value) {
				return fmt.Errorf("%s: no option %q", name, value)
			}
			continue
		}
		e, ok := form.Field(name)
		if !ok {
			return fmt.Errorf("unknown field %q", name)
		}
		if err := e.SetText(value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// printForm validates form and writes one line per field followed by its
// messages. It reports whether every field is valid.
func printForm(out *termenv.Output, form *widgets.Form) bool {
	valid := form.Validate()
	errs := form.Errors()

	fmt.Fprintln(out, out.String("Fields:").Bold())
	for _, e := range form.Fields() {
		label := e.Name()
		if label == "" {
			label = e.Tag()
		}
		state := out.String(fmt.Sprintf("%-8s", "ok")).Foreground(out.Color("2"))
		if !e.IsValid() {
			state = out.String(fmt.Sprintf("%-8s", "invalid")).Foreground(out.Color("1")).Bold()
		}
		fmt.Fprintf(out, "  %-16s %-22s %s %s\n", label, e.Tag(), state, quote(e.Text()))
	}
	if len(errs) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, out.String("Problems:").Bold())
		for _, name := range sortedKeys(errs) {
			for _, msg := range errs[name] {
				fmt.Fprintf(out, "  %s: %s\n", name, msg)
			}
		}
	}
	return valid
}

func quote(s string) string {
	if s == "" {
		return "-"
	}
	return fmt.Sprintf("%q", s)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
