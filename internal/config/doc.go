// Package config loads, normalizes, and validates tidy configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TIDY_TARGET_DIR and XDG_DOWNLOAD_DIR. The file only carries ambient
// settings; the category table is compiled into the categories package.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
