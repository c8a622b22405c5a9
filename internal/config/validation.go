package config

import (
	"regexp"
	"strings"

	"github.com/docker/go-units"
	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
	"github.com/k1LoW/duration"
)

var (
	hexColor  = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	ansiColor = regexp.MustCompile(`^\d{1,3}$`)
)

// validateSize accepts human sizes understood by go-units ("10MB", "512KiB").
// Empty is acceptable.
func validateSize(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	_, err := units.FromHumanSize(value)
	return err == nil
}

// validateDuration accepts periods such as "30 days" or "12h". Empty is
// acceptable.
func validateDuration(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	d, err := duration.Parse(value)
	return err == nil && d > 0
}

// validateColor accepts hex codes and ANSI color numbers. Empty is
// acceptable.
func validateColor(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || hexColor.MatchString(value) || ansiColor.MatchString(value)
}

func validateGlob(fl validator.FieldLevel) bool {
	_, err := glob.Compile(fl.Field().String())
	return err == nil
}
