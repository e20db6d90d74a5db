package problemgen

import "fmt"

// StructuralValidator checks that required fields are present, that enum
// values are known, and that the operator is allowed for the tier.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	if q.Text == "" {
		return v.fail("question text is empty")
	}
	if q.Plain == "" {
		return v.fail("plain expression is empty")
	}
	if q.Answer == "" {
		return v.fail("answer is empty")
	}

	switch q.Category {
	case CategoryArithmetic:
		if !input.Tier.Rules().Allows(q.Operator) {
			return v.fail(fmt.Sprintf("operator %q is not allowed for tier %d", q.Operator, input.Tier))
		}
		if q.AnswerType != AnswerTypeInteger && q.AnswerType != AnswerTypeFraction {
			return v.fail(fmt.Sprintf("arithmetic answer_type must be integer or fraction, got %q", q.AnswerType))
		}
	case CategoryAlgebra:
		if q.Form != FormOneSided && q.Form != FormTwoSided {
			return v.fail(fmt.Sprintf("unknown equation form %q", q.Form))
		}
		if q.AnswerType != AnswerTypeSolution {
			return v.fail(fmt.Sprintf("algebra answer_type must be solution, got %q", q.AnswerType))
		}
	default:
		return v.fail(fmt.Sprintf("unknown category %q", q.Category))
	}

	if input.Category != "" && input.Category != q.Category {
		return v.fail(fmt.Sprintf("requested %s question, got %s", input.Category, q.Category))
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}
