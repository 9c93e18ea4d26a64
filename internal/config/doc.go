// Package config loads, normalizes, and validates chanreg configuration.
//
// It supplies repository defaults that mirror the custom/ workspace layout,
// reads TOML files, honours environment fallbacks (CHANREG_BASE_DIR,
// CHANREG_LOG_LEVEL), and resolves every relative path against base_dir so
// downstream code only ever sees absolute paths.
//
// Always obtain settings through this package so stages receive sanitized
// paths, an ordered candidate source list, and clear validation errors.
package config
