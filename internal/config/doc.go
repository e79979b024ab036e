// Package config defines the format-agnostic network descriptor model, along
// with the Loader interface for reading descriptors from various sources.
//
// The `config.Net` is the single source of truth for the `builder` package.
// Concrete loaders, such as the HCL one, are provided in separate packages.
package config
