package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MathCheckValidator independently recomputes the answer from the plain
// expression and compares it with the declared answer.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	computed, err := computeAnswer(q.Plain, q.AnswerType)
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("cannot recompute %q: %s", q.Plain, err),
		}
	}
	if !answersEqual(computed, q.Answer, q.AnswerType) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %q but generator produced %q for %q", computed, q.Answer, q.Plain),
		}
	}
	return nil
}

// Patterns for the plain expressions the generators emit.
var (
	// "a + b", "a - b", "a ÷ b"
	intArithRe = regexp.MustCompile(`^(\d+) ([+\-÷×*/]) (\d+)$`)

	// "a/b × c/d"
	fractionArithRe = regexp.MustCompile(`^(\d+)/(\d+) ([×*]) (\d+)/(\d+)$`)

	// "ax + b = c" or "ax + b = cx ± d"; a coefficient of 1 is written "x".
	linearRe = regexp.MustCompile(`^(\d*)x \+ (\d+) = (?:(\d*)x ([+-]) )?(\d+)$`)
)

// computeAnswer recomputes the answer of a plain expression.
func computeAnswer(plain string, answerType AnswerType) (string, error) {
	switch answerType {
	case AnswerTypeInteger:
		return tryIntArith(plain)
	case AnswerTypeFraction:
		return tryFractionArith(plain)
	case AnswerTypeSolution:
		return trySolveLinear(plain)
	default:
		return "", fmt.Errorf("unsupported answer type %q", answerType)
	}
}

// tryIntArith evaluates a binary integer expression. Division must be exact.
func tryIntArith(plain string) (string, error) {
	m := intArithRe.FindStringSubmatch(plain)
	if m == nil {
		return "", fmt.Errorf("no integer expression found")
	}
	a, _ := strconv.ParseInt(m[1], 10, 64)
	b, _ := strconv.ParseInt(m[3], 10, 64)

	var result int64
	switch normalizeOp(m[2]) {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*":
		result = a * b
	case "/":
		if b == 0 {
			return "", fmt.Errorf("division by zero")
		}
		if a%b != 0 {
			return "", fmt.Errorf("inexact division %d / %d", a, b)
		}
		result = a / b
	}
	return strconv.FormatInt(result, 10), nil
}

// tryFractionArith evaluates a fraction product and reduces it.
func tryFractionArith(plain string) (string, error) {
	m := fractionArithRe.FindStringSubmatch(plain)
	if m == nil {
		return "", fmt.Errorf("no fraction expression found")
	}
	aN, _ := strconv.ParseInt(m[1], 10, 64)
	aD, _ := strconv.ParseInt(m[2], 10, 64)
	bN, _ := strconv.ParseInt(m[4], 10, 64)
	bD, _ := strconv.ParseInt(m[5], 10, 64)
	if aD == 0 || bD == 0 {
		return "", fmt.Errorf("zero denominator")
	}

	rN, rD := aN*bN, aD*bD
	g := gcd(abs(rN), rD)
	return fmt.Sprintf("%d/%d", rN/g, rD/g), nil
}

// trySolveLinear solves a·x + b = c·x + d (c = 0 for one-sided equations).
func trySolveLinear(plain string) (string, error) {
	m := linearRe.FindStringSubmatch(plain)
	if m == nil {
		return "", fmt.Errorf("no linear equation found")
	}
	a := coefficient(m[1])
	b, _ := strconv.ParseInt(m[2], 10, 64)
	d, _ := strconv.ParseInt(m[5], 10, 64)

	var c int64
	if m[4] != "" {
		c = coefficient(m[3])
		if m[4] == "-" {
			d = -d
		}
	}

	if a == c {
		return "", fmt.Errorf("equation has no unique solution")
	}
	num, den := d-b, a-c
	if num%den != 0 {
		return "", fmt.Errorf("solution is not an integer")
	}
	return fmt.Sprintf("x = %d", num/den), nil
}

func coefficient(s string) int64 {
	if s == "" {
		return 1
	}
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

// normalizeOp normalizes multiplication and division symbols.
func normalizeOp(op string) string {
	switch op {
	case "×":
		return "*"
	case "÷":
		return "/"
	default:
		return op
	}
}

// answersEqual compares two answer strings for equality, with normalization.
func answersEqual(a, b string, answerType AnswerType) bool {
	na, err := normalizeAnswer(a, answerType)
	if err != nil {
		return strings.TrimSpace(a) == strings.TrimSpace(b)
	}
	nb, err := normalizeAnswer(b, answerType)
	if err != nil {
		return strings.TrimSpace(a) == strings.TrimSpace(b)
	}
	return na == nb
}
