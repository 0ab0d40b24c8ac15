// Package file persists settings as TOML under ~/.digest/config.toml.
// Dotted keys map onto nested tables, so source.location is written as
// location inside [source].
package file
