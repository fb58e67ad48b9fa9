package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
)

// ValidateDocument performs schema and cross-field validation on a document.
// Role and preset bodies are validated again when they are registered.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return iddlerrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seenRoles := make(map[string]int, len(doc.Roles))
	for i, r := range doc.Roles {
		key := string(r.Domain) + "/" + r.Name
		if prev, exists := seenRoles[key]; exists {
			return iddlerrors.NewValidationError(fmt.Sprintf("roles[%d].name", i),
				fmt.Sprintf("role %q already defined at roles[%d]", key, prev), nil)
		}
		seenRoles[key] = i
	}

	seenPresets := make(map[string]int, len(doc.Presets))
	for i, p := range doc.Presets {
		if prev, exists := seenPresets[p.Name]; exists {
			return iddlerrors.NewValidationError(fmt.Sprintf("presets[%d].name", i),
				fmt.Sprintf("preset %q already defined at presets[%d]", p.Name, prev), nil)
		}
		seenPresets[p.Name] = i
		if err := p.Validate(); err != nil {
			return iddlerrors.NewValidationError(fmt.Sprintf("presets[%d]", i), err.Error(), err)
		}
	}

	for i, panel := range doc.Panels {
		for name, spec := range panel.Regions {
			if spec.Max > 0 && spec.Max < spec.Min {
				return iddlerrors.NewValidationError(fmt.Sprintf("panels[%d].regions.%s", i, name), "max is below min", nil)
			}
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return iddlerrors.NewValidationError(field, msg, err)
	}

	return iddlerrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
