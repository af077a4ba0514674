package definition

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-drift/formkit/pkg/attr"
	"github.com/go-drift/formkit/pkg/errors"
	"github.com/go-drift/formkit/pkg/filter"
	"github.com/go-drift/formkit/pkg/rules"
	"github.com/go-drift/formkit/pkg/widgets"
)

type stringField interface {
	AddFilter(filter.Filter[string])
	AddRule(rules.Rule[string])
}

type numberField interface {
	AddRule(rules.Rule[float64])
}

type fileField interface {
	AddRule(rules.Rule[[]widgets.File])
}

// Build creates a form holding one widget per field. A nil registry uses
// widgets.DefaultRegistry. Fields are configured in this order: name,
// filters, rules, then attributes, so a declared value passes through the
// declared filters.
func Build(doc *Document, reg *widgets.Registry, o widgets.Options) (*widgets.Form, error) {
	if reg == nil {
		reg = widgets.DefaultRegistry()
	}
	form := widgets.NewForm()
	for i, f := range doc.Fields {
		e, err := BuildField(f, reg, o)
		if err != nil {
			form.Dispose()
			err = fmt.Errorf("field %d (%s): %w", i, f.Label(), err)
			errors.Report(&errors.InputError{Op: "definition.Build", Kind: errors.KindConfig, Tag: f.Tag, Err: err})
			return nil, err
		}
		form.Add(e)
	}
	return form, nil
}

// BuildField creates and configures the widget for f.
func BuildField(f Field, reg *widgets.Registry, o widgets.Options) (widgets.Element, error) {
	e, err := reg.New(f.Tag, o)
	if err != nil {
		return nil, err
	}
	if f.Name != "" {
		e.SetAttribute("name", f.Name)
	}
	if err := applyFilters(e, f.Filters); err != nil {
		e.Dispose()
		return nil, err
	}
	for _, r := range f.Rules {
		if err := applyRule(e, r); err != nil {
			e.Dispose()
			return nil, err
		}
	}
	widgets.ApplyAttributes(e, attr.Set(f.Attributes))
	return e, nil
}

func applyFilters(e widgets.Element, names []string) error {
	if len(names) == 0 {
		return nil
	}
	sf, ok := e.(stringField)
	if !ok {
		return fmt.Errorf("%s does not take filters", e.Tag())
	}
	for _, name := range names {
		fn, ok := filter.Named(name)
		if !ok {
			return fmt.Errorf("unknown filter %q", name)
		}
		sf.AddFilter(fn)
	}
	return nil
}

func applyRule(e widgets.Element, r Rule) error {
	if nf, ok := e.(numberField); ok {
		rule, err := numberRule(r)
		if err != nil {
			return err
		}
		nf.AddRule(rule)
		return nil
	}
	if ff, ok := e.(fileField); ok {
		if r.Kind != "required" && r.Kind != "not-empty" {
			return fmt.Errorf("unknown file rule %q", r.Kind)
		}
		ff.AddRule(rules.NotEmpty[widgets.File](r.Message))
		return nil
	}
	sf, ok := e.(stringField)
	if !ok {
		return fmt.Errorf("%s does not take rules", e.Tag())
	}
	rule, err := stringRule(r)
	if err != nil {
		return err
	}
	sf.AddRule(rule)
	return nil
}

func stringRule(r Rule) (rules.Rule[string], error) {
	var rule rules.Rule[string]
	switch r.Kind {
	case "required":
		rule = rules.Required(r.Message)
	case "not-empty":
		rule = rules.Func(func(s string) bool { return strings.TrimSpace(s) != "" }, r.Message)
		if rule.Message == "" {
			rule.Message = "required"
		}
	case "min-length", "max-length":
		n, err := strconv.Atoi(r.Value)
		if err != nil || n < 0 {
			return rule, fmt.Errorf("%s rule: invalid length %q", r.Kind, r.Value)
		}
		if r.Kind == "min-length" {
			rule = rules.MinLength(n)
		} else {
			rule = rules.MaxLength(n)
		}
		if r.Message != "" {
			rule.Message = r.Message
		}
	case "pattern":
		re, err := regexp.Compile("^(?:" + r.Value + ")$")
		if err != nil {
			return rule, fmt.Errorf("pattern rule: %w", err)
		}
		rule = rules.Pattern(re, r.Message)
	default:
		return rule, fmt.Errorf("unknown string rule %q", r.Kind)
	}
	return rule, nil
}

func numberRule(r Rule) (rules.Rule[float64], error) {
	switch r.Kind {
	case "required", "not-empty":
		return rules.NotEmptyNumber(r.Message), nil
	case "range":
		lo, hi := math.NaN(), math.NaN()
		if r.Min != nil {
			lo = *r.Min
		}
		if r.Max != nil {
			hi = *r.Max
		}
		rule := rules.InRange(lo, hi)
		if r.Message != "" {
			rule.Message = r.Message
		}
		return rule, nil
	}
	return rules.Rule[float64]{}, fmt.Errorf("unknown number rule %q", r.Kind)
}
