package problemgen

import "fmt"

// Coefficients and constants for algebra questions come from these ranges.
// The solution always lies in [solutionMin, solutionMax].
const (
	coefMin     = 1
	coefMax     = 9
	constMin    = 0
	constMax    = 9
	solutionMin = 0
	solutionMax = 9
)

// Algebra produces one linear equation in x with an integer solution.
// The form (a·x + b = c or a·x + b = c·x + d) is chosen uniformly.
func (g *Generator) Algebra() (*Question, error) {
	var plain string
	var x int
	var form EquationForm

	if g.rng.IntN(2) == 0 {
		form = FormOneSided
		a := between(g.rng, coefMin, coefMax)
		x = between(g.rng, solutionMin, solutionMax)
		b := between(g.rng, constMin, constMax)
		c := a*x + b
		plain = fmt.Sprintf("%s + %d = %d", term(a), b, c)
	} else {
		form = FormTwoSided
		x = between(g.rng, solutionMin, solutionMax)
		a := between(g.rng, coefMin, coefMax)
		c := between(g.rng, coefMin, coefMax)
		// Distinct coefficients keep the solution unique.
		for c == a {
			c = between(g.rng, coefMin, coefMax)
		}
		b := between(g.rng, constMin, constMax)
		d := b + x*(a-c)
		plain = fmt.Sprintf("%s + %d = %s %s", term(a), b, term(c), signed(d))
	}

	q := &Question{
		Category:   CategoryAlgebra,
		Form:       form,
		Text:       fmt.Sprintf(`Solve for x: \(\displaystyle %s\)`, plain),
		Plain:      plain,
		Answer:     fmt.Sprintf("x = %d", x),
		AnswerType: AnswerTypeSolution,
	}
	if err := g.validate(q, GenerateInput{Category: CategoryAlgebra}); err != nil {
		return nil, err
	}
	return q, nil
}

// term renders coef·x, dropping a coefficient of 1.
func term(coef int) string {
	if coef == 1 {
		return "x"
	}
	return fmt.Sprintf("%dx", coef)
}

// signed renders a trailing constant as "+ n" or "- n".
func signed(n int) string {
	if n < 0 {
		return fmt.Sprintf("- %d", -n)
	}
	return fmt.Sprintf("+ %d", n)
}
