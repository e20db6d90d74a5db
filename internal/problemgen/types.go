package problemgen

// Category identifies which generator produced a question.
type Category string

const (
	CategoryArithmetic Category = "arithmetic"
	CategoryAlgebra    Category = "algebra"
)

// Question represents a generated math question ready for rendering.
type Question struct {
	// Category is the generator that produced this question.
	Category Category

	// Operator is the arithmetic operation. Empty for algebra questions.
	Operator Operator

	// Form is the equation shape. Empty for arithmetic questions.
	Form EquationForm

	// Text is the typeset question, with every numeric expression wrapped
	// in inline math delimiters, e.g. `\(\displaystyle 12 \div 3\)`.
	Text string

	// Plain is the same expression in plain text, e.g. "12 ÷ 3",
	// "3/4 × 2/5" or "3x + 4 = 2x + 7". Used for terminal display and
	// for recomputing the answer.
	Plain string

	// Answer is the canonical correct answer as a string.
	// For integer: "7". For fraction: "3/10". For algebra: "x = 4".
	Answer string

	// AnswerType describes the shape of Answer for validation.
	AnswerType AnswerType

	// Tier is the tier this question was generated for. Zero for algebra.
	Tier Tier
}

// AnswerType describes the representation of the correct answer.
type AnswerType string

const (
	AnswerTypeInteger  AnswerType = "integer"  // e.g. "623"
	AnswerTypeFraction AnswerType = "fraction" // e.g. "3/4", "7/1"
	AnswerTypeSolution AnswerType = "solution" // e.g. "x = 4"
)

// EquationForm describes the shape of a linear equation.
type EquationForm string

const (
	// FormOneSided is a·x + b = c.
	FormOneSided EquationForm = "one-sided"

	// FormTwoSided is a·x + b = c·x + d.
	FormTwoSided EquationForm = "two-sided"
)

// GenerateInput holds the context a question was generated for. Validators
// receive it alongside the question.
type GenerateInput struct {
	Category Category
	Tier     Tier
}
