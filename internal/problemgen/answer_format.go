package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	fractionPattern = regexp.MustCompile(`^-?\d+/\d+$`)
	solutionPattern = regexp.MustCompile(`^x = (-?\d+)$`)
)

// AnswerFormatValidator checks that the answer string matches the declared
// answer type.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	var err error
	switch q.AnswerType {
	case AnswerTypeInteger:
		err = validateInteger(q.Answer)
	case AnswerTypeFraction:
		err = validateFraction(q.Answer)
	case AnswerTypeSolution:
		err = validateSolution(q.Answer)
	default:
		err = fmt.Errorf("unknown answer type")
	}
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("invalid %s answer %q: %s", q.AnswerType, q.Answer, err),
		}
	}
	return nil
}

// validateInteger checks that s is a non-negative integer with no leading
// zeros.
func validateInteger(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("not a valid integer")
	}
	// Check for leading zeros: formatted back should match.
	if strconv.FormatInt(n, 10) != s {
		return fmt.Errorf("has leading zeros")
	}
	if n < 0 {
		return fmt.Errorf("is negative")
	}
	return nil
}

// validateFraction checks that s matches a/b pattern, denominator > 0, and is in lowest terms.
func validateFraction(s string) error {
	if !fractionPattern.MatchString(s) {
		return fmt.Errorf("does not match fraction pattern a/b")
	}
	num, den, err := parseFraction(s)
	if err != nil {
		return err
	}
	if den <= 0 {
		return fmt.Errorf("denominator must be positive")
	}
	if gcd(abs(num), den) != 1 {
		return fmt.Errorf("fraction is not in lowest terms")
	}
	return nil
}

// validateSolution checks that s reads "x = n" for a canonical integer n.
func validateSolution(s string) error {
	m := solutionPattern.FindStringSubmatch(s)
	if m == nil {
		return fmt.Errorf("does not match pattern \"x = n\"")
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return fmt.Errorf("solution is not a valid integer")
	}
	if strconv.FormatInt(n, 10) != m[1] {
		return fmt.Errorf("solution has leading zeros")
	}
	return nil
}
