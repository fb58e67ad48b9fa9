package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/iddl/internal/role"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	regionPattern   = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	propertyPattern = regexp.MustCompile(`^(--)?[a-zA-Z][a-zA-Z0-9-]*$`)
	knownDomains    = map[role.Domain]struct{}{
		role.DomainText: {}, role.DomainContainer: {}, role.DomainOverlay: {},
		role.DomainPage: {}, role.DomainAction: {},
	}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
			return regionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_property", func(fl validator.FieldLevel) bool {
			return propertyPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("role_name", func(fl validator.FieldLevel) bool {
			return role.ValidateName(fl.Field().String()) == nil
		})

		_ = v.RegisterValidation("domain", func(fl validator.FieldLevel) bool {
			_, ok := knownDomains[role.Domain(fl.Field().String())]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
