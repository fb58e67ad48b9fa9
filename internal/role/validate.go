package role

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/iddl/internal/style"
	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	propertyPattern = regexp.MustCompile(`^(--)?[a-zA-Z][a-zA-Z0-9-]*$`)
	rolePattern     = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// ValidateName checks that name is usable as a role key.
func ValidateName(name string) error {
	if !rolePattern.MatchString(name) {
		return iddlerrors.NewValidationError("role", fmt.Sprintf("invalid role name %q", name), nil)
	}
	return nil
}

// Validate checks cfg's structure and every axis key and CSS property it names.
func Validate(cfg Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if err := validateFragment("base", cfg.Base); err != nil {
		return err
	}
	for p, f := range cfg.Prominence {
		if !p.Valid() {
			return iddlerrors.NewValidationError("prominence", fmt.Sprintf("unknown prominence %q", p), nil)
		}
		if err := validateFragment("prominence."+string(p), f); err != nil {
			return err
		}
	}
	for p := range cfg.TagByProminence {
		if !p.Valid() {
			return iddlerrors.NewValidationError("tag_by_prominence", fmt.Sprintf("unknown prominence %q", p), nil)
		}
	}
	for d, f := range cfg.Density {
		if !d.Valid() {
			return iddlerrors.NewValidationError("density", fmt.Sprintf("unknown density %q", d), nil)
		}
		if err := validateFragment("density."+string(d), f); err != nil {
			return err
		}
	}
	for i, f := range cfg.Intent {
		if !i.Valid() {
			return iddlerrors.NewValidationError("intent", fmt.Sprintf("unknown intent %q", i), nil)
		}
		if err := validateFragment("intent."+string(i), f); err != nil {
			return err
		}
	}
	for a, f := range cfg.Align {
		if !a.Valid() {
			return iddlerrors.NewValidationError("align", fmt.Sprintf("unknown align %q", a), nil)
		}
		if err := validateFragment("align."+string(a), f); err != nil {
			return err
		}
	}
	for i, o := range cfg.Compound {
		field := fmt.Sprintf("compound[%d]", i)
		if o.When.IsZero() {
			return iddlerrors.NewValidationError(field, "predicate is empty", nil)
		}
		if err := validatePredicate(field, o.When); err != nil {
			return err
		}
		if err := validateFragment(field+".style", o.Style); err != nil {
			return err
		}
	}
	return nil
}

func validatePredicate(field string, p Predicate) error {
	switch {
	case p.Prominence != "" && !p.Prominence.Valid():
		return iddlerrors.NewValidationError(field, fmt.Sprintf("unknown prominence %q", p.Prominence), nil)
	case p.Density != "" && !p.Density.Valid():
		return iddlerrors.NewValidationError(field, fmt.Sprintf("unknown density %q", p.Density), nil)
	case p.Intent != "" && !p.Intent.Valid():
		return iddlerrors.NewValidationError(field, fmt.Sprintf("unknown intent %q", p.Intent), nil)
	case p.Align != "" && !p.Align.Valid():
		return iddlerrors.NewValidationError(field, fmt.Sprintf("unknown align %q", p.Align), nil)
	}
	return nil
}

func validateFragment(field string, f style.Fragment) error {
	props := make([]string, 0, len(f))
	for p := range f {
		props = append(props, p)
	}
	sort.Strings(props)
	for _, p := range props {
		if !propertyPattern.MatchString(p) {
			return iddlerrors.NewValidationError(field, fmt.Sprintf("invalid CSS property %q", p), nil)
		}
		if strings.TrimSpace(f[p]) == "" {
			return iddlerrors.NewValidationError(field, fmt.Sprintf("empty value for %q", p), nil)
		}
	}
	return nil
}

func convertValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return iddlerrors.NewValidationError("", err.Error(), err)
	}
	first := validationErrs[0]
	return iddlerrors.NewValidationError(
		strings.ToLower(first.Namespace()),
		fmt.Sprintf("failed %q constraint", first.Tag()),
		err,
	)
}
