// Package validation wraps go-playground/validator for struct-tag based
// validation of file-loaded configuration.
package validation
