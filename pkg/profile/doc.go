// Package profile loads declarative launch profiles from TOML or YAML files,
// applies environment variable overrides, and translates them into validated
// launch configurations.
package profile
