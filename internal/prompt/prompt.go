// Copyright 2026 Scalc Users
// SPDX-License-Identifier: Apache-2.0

// Package prompt acquires calculator inputs from the terminal. Numeric
// answers are validated before they are accepted, so callers never observe
// a malformed operand; the user is simply asked again.
package prompt

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
)

// askOne wraps survey so tests can script answers without a terminal.
var askOne = survey.AskOne

// Reader prompts for the inputs of one calculation.
type Reader struct{}

// NewReader creates a Reader bound to the controlling terminal.
func NewReader() *Reader {
	return &Reader{}
}

// ReadOperand prompts for a signed integer. The validator rejects anything
// strconv.ParseInt cannot handle and survey re-asks, so a returned value is
// always well formed.
func (r *Reader) ReadOperand(message string) (int64, error) {
	var answer string
	if err := askOne(&survey.Input{Message: message}, &answer, survey.WithValidator(integerValidator)); err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("operand %q passed validation but failed to parse: %w", answer, err)
	}
	return n, nil
}

// ReadOperator prompts for the operation character. Any non-empty answer is
// accepted and its first rune returned; dispatch decides whether the
// operator is known.
func (r *Reader) ReadOperator(message string) (rune, error) {
	var answer string
	if err := askOne(&survey.Input{Message: message}, &answer, survey.WithValidator(survey.Required)); err != nil {
		return 0, err
	}
	return []rune(answer)[0], nil
}

func integerValidator(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected a string answer, got %T", ans)
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("%q is not an integer", s)
	}
	return nil
}
