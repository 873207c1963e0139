// Copyright (C) 2026 Taskwell contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ser

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// serValidate is the validator instance for serialized state.
// Initialized in init() with struct-level validators.
var serValidate *validator.Validate

func init() {
	serValidate = validator.New()
	serValidate.RegisterStructValidation(validateTagLit, TagLit{})
}

// validateTagLit enforces that a tag literal is either positive or
// negative, never both and never neither.
func validateTagLit(sl validator.StructLevel) {
	lit := sl.Current().Interface().(TagLit)
	if (lit.Pos == nil) == (lit.Neg == nil) {
		sl.ReportError(lit.Pos, "Pos", "pos", "taglit", "")
	}
}

// Validate checks a deserialized document against the package's
// structural rules. It returns a wrapped validator error describing
// the first offending field.
func Validate(doc any) error {
	if err := serValidate.Struct(doc); err != nil {
		return fmt.Errorf("invalid state document: %w", err)
	}
	return nil
}
