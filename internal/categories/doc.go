// Package categories builds the immutable extension → category table that
// drives file classification.
//
// Categories are declared once at process start. Build routes any extension
// claimed by more than one category to the Others fallback, and every lookup,
// including names with no extension, resolves to exactly one category.
package categories
