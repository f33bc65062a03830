package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/prism/internal/accordion"
	"github.com/alexisbeaulieu97/prism/internal/ui/components"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern      = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	componentIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator used across the package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.Split(field.Tag.Get("yaml"), ",")[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("component_id", func(fl validator.FieldLevel) bool {
			return componentIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
			_, err := components.ParseVariant(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("size", func(fl validator.FieldLevel) bool {
			_, err := components.ParseSize(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("mode", func(fl validator.FieldLevel) bool {
			_, err := accordion.ParseMode(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateManifest performs schema and cross-field validation on a manifest.
func ValidateManifest(m *Manifest) error {
	if m == nil {
		return prismerrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	if err := validatorInstance().Struct(m); err != nil {
		return convertValidationError(err)
	}

	if err := checkUniqueIDs(m); err != nil {
		return err
	}

	for i, slider := range m.Sliders {
		if err := validateSlider(slider, i); err != nil {
			return err
		}
	}

	for i, sel := range m.Selects {
		if sel.Default == "" {
			continue
		}
		if !contains(sel.Options, sel.Default) {
			return prismerrors.NewValidationError(fieldFor("selects", i, "default"), fmt.Sprintf("default %q is not one of the options", sel.Default), nil)
		}
	}

	return nil
}

func validateSlider(s SliderSpec, index int) error {
	switch {
	case s.Min >= s.Max:
		return prismerrors.NewValidationError(fieldFor("sliders", index, "max"), fmt.Sprintf("max %g must be greater than min %g", s.Max, s.Min), nil)
	case s.Step <= 0:
		return prismerrors.NewValidationError(fieldFor("sliders", index, "step"), "step must be positive", nil)
	case s.Value < s.Min || s.Value > s.Max:
		return prismerrors.NewValidationError(fieldFor("sliders", index, "value"), fmt.Sprintf("value %g is outside [%g, %g]", s.Value, s.Min, s.Max), nil)
	}
	return nil
}

func checkUniqueIDs(m *Manifest) error {
	seen := make(map[string]string)
	for _, ref := range m.refs() {
		field := fieldFor(ref.section, ref.index, "id")
		if previous, exists := seen[ref.id]; exists {
			return prismerrors.NewValidationError(field, fmt.Sprintf("duplicate component id %q (first used at %s)", ref.id, previous), nil)
		}
		seen[ref.id] = field
	}
	return nil
}

type componentRef struct {
	section string
	index   int
	id      string
}

// refs lists every component id with its position in the manifest.
func (m *Manifest) refs() []componentRef {
	var refs []componentRef
	add := func(section string, count int, id func(int) string) {
		for i := 0; i < count; i++ {
			refs = append(refs, componentRef{section: section, index: i, id: id(i)})
		}
	}

	add("accordions", len(m.Accordions), func(i int) string { return m.Accordions[i].ID })
	add("buttons", len(m.Buttons), func(i int) string { return m.Buttons[i].ID })
	add("alerts", len(m.Alerts), func(i int) string { return m.Alerts[i].ID })
	add("cards", len(m.Cards), func(i int) string { return m.Cards[i].ID })
	add("checkboxes", len(m.Checkboxes), func(i int) string { return m.Checkboxes[i].ID })
	add("sliders", len(m.Sliders), func(i int) string { return m.Sliders[i].ID })
	add("selects", len(m.Selects), func(i int) string { return m.Selects[i].ID })
	add("inputs", len(m.Inputs), func(i int) string { return m.Inputs[i].ID })
	add("tooltips", len(m.Tooltips), func(i int) string { return m.Tooltips[i].ID })
	add("popovers", len(m.Popovers), func(i int) string { return m.Popovers[i].ID })
	add("skeletons", len(m.Skeletons), func(i int) string { return m.Skeletons[i].ID })
	add("dialogs", len(m.Dialogs), func(i int) string { return m.Dialogs[i].ID })
	return refs
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return prismerrors.NewValidationError(field, msg, err)
	}

	return prismerrors.NewValidationError("manifest", err.Error(), err)
}

// yamlFieldName turns "Manifest.buttons[0].Look.variant" into "buttons[0].variant".
func yamlFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	kept := parts[:0]
	for _, part := range parts {
		if part == "Look" {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, ".")
}

func fieldFor(section string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", section, index, field)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
