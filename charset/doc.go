// Package charset provides character encoding utilities for GEDCOM files.
//
// This package handles UTF-8 validation and Byte Order Mark (BOM) removal
// for GEDCOM file parsing. It ensures that GEDCOM data is properly encoded
// and provides detailed error reporting for encoding issues.
package charset
