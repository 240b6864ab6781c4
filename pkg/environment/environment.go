package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

var aliases = map[string]Environment{
	"dev":         Development,
	"development": Development,
	"local":       Development,
	"stage":       Staging,
	"staging":     Staging,
	"prod":        Production,
	"production":  Production,
}

// Parse maps an environment name or its short alias to an Environment.
// Unrecognised or empty names resolve to Development.
func Parse(name string) Environment {
	if env, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return env
	}
	return Development
}

// IsProduction reports whether e is Production.
func (e Environment) IsProduction() bool { return e == Production }

// IsStaging reports whether e is Staging.
func (e Environment) IsStaging() bool { return e == Staging }

// IsDevelopment reports whether e is Development.
func (e Environment) IsDevelopment() bool { return e == Development }
