// Package config handles pipeline configuration loading and validation.
//
// Configuration is loaded from a yaml file and validated using struct tags.
// The loaded value is returned to the caller and threaded through the
// pipeline explicitly; nothing in this package holds global state.
package config
