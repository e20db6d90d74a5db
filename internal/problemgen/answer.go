package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// CheckAnswer compares a learner's input against the correct answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed
// - For fractions: equivalent fractions are accepted (e.g., "2/4" matches "1/2")
// - For integers: leading zeros are ignored (e.g., "007" matches "7")
// - For solutions: "x = 4", "x=4" and "4" are equivalent
func CheckAnswer(learnerAnswer string, question *Question) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}

	normalizedLearner, err := normalizeAnswer(learnerAnswer, question.AnswerType)
	if err != nil {
		return false
	}
	normalizedCorrect, err := normalizeAnswer(question.Answer, question.AnswerType)
	if err != nil {
		return false
	}
	return normalizedLearner == normalizedCorrect
}

// normalizeAnswer normalizes an answer string for comparison.
func normalizeAnswer(answer string, answerType AnswerType) (string, error) {
	answer = strings.TrimSpace(answer)

	switch answerType {
	case AnswerTypeInteger:
		n, err := strconv.ParseInt(answer, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid integer: %w", err)
		}
		return strconv.FormatInt(n, 10), nil

	case AnswerTypeFraction:
		// A whole number is a fraction over 1.
		if !strings.Contains(answer, "/") {
			answer += "/1"
		}
		num, den, err := parseFraction(answer)
		if err != nil {
			return "", err
		}
		if den == 0 {
			return "", fmt.Errorf("zero denominator")
		}
		// Normalize sign: negative sign on numerator only.
		if den < 0 {
			num = -num
			den = -den
		}
		// Reduce to lowest terms.
		g := gcd(abs(num), den)
		num /= g
		den /= g
		return fmt.Sprintf("%d/%d", num, den), nil

	case AnswerTypeSolution:
		v := strings.ReplaceAll(strings.ToLower(answer), " ", "")
		v = strings.TrimPrefix(v, "x=")
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid solution: %w", err)
		}
		return fmt.Sprintf("x = %d", n), nil

	default:
		return answer, nil
	}
}

// parseFraction parses "a/b" into numerator and denominator.
func parseFraction(s string) (int64, int64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value of n.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
