package prompt

import (
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptAnswers replaces the survey seam with canned answers for the
// duration of one test.
func scriptAnswers(t *testing.T, answers ...string) {
	t.Helper()
	original := askOne
	i := 0
	askOne = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		require.Less(t, i, len(answers), "more prompts than scripted answers")
		s, ok := response.(*string)
		require.True(t, ok)
		*s = answers[i]
		i++
		return nil
	}
	t.Cleanup(func() { askOne = original })
}

func TestReadOperand(t *testing.T) {
	scriptAnswers(t, "42", "-12")

	r := NewReader()
	n, err := r.ReadOperand("Enter first number:")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = r.ReadOperand("Enter second number:")
	require.NoError(t, err)
	assert.Equal(t, int64(-12), n)
}

func TestReadOperandInterrupted(t *testing.T) {
	original := askOne
	askOne = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		return terminal.InterruptErr
	}
	t.Cleanup(func() { askOne = original })

	_, err := NewReader().ReadOperand("Enter first number:")
	assert.ErrorIs(t, err, terminal.InterruptErr)
}

func TestReadOperator(t *testing.T) {
	scriptAnswers(t, "+", "%2")

	r := NewReader()
	op, err := r.ReadOperator("Enter operation (+, -, *, /):")
	require.NoError(t, err)
	assert.Equal(t, '+', op)

	// Only the first rune of a longer answer counts.
	op, err = r.ReadOperator("Enter operation (+, -, *, /):")
	require.NoError(t, err)
	assert.Equal(t, '%', op)
}

func TestIntegerValidator(t *testing.T) {
	for _, good := range []string{"0", "7", "-12", "9223372036854775807"} {
		assert.NoError(t, integerValidator(good), good)
	}
	for _, bad := range []string{"", "abc", "12.5", "1e3", " 7 ", "9223372036854775808"} {
		assert.Error(t, integerValidator(bad), bad)
	}
	assert.Error(t, integerValidator(42))
}
