package problemgen

import (
	"fmt"
	"strconv"
)

// Arithmetic produces one arithmetic question for the tier. The operator
// is drawn uniformly from the tier's set; operands come from its range.
func (g *Generator) Arithmetic(tier Tier) (*Question, error) {
	rules := tier.Rules()
	op := rules.Operators[g.rng.IntN(len(rules.Operators))]

	var (
		q   *Question
		err error
	)
	switch op {
	case OpAdd:
		q = g.addition(rules)
	case OpSubtract:
		q = g.subtraction(rules)
	case OpDivide:
		q = g.division(rules)
	case OpFractionMul:
		q, err = g.fractionProduct()
		if err != nil {
			return nil, fmt.Errorf("fraction operand: %w", err)
		}
	}

	q.Category = CategoryArithmetic
	q.Operator = op
	q.Tier = tier

	if err := g.validate(q, GenerateInput{Category: CategoryArithmetic, Tier: tier}); err != nil {
		return nil, err
	}
	return q, nil
}

func (g *Generator) addition(r Rules) *Question {
	a := between(g.rng, r.Min, r.Max)
	b := between(g.rng, r.Min, r.Max)
	return binaryQuestion(a, "+", "+", b, a+b)
}

// subtraction swaps operands so the difference is never negative.
func (g *Generator) subtraction(r Rules) *Question {
	a := between(g.rng, r.Min, r.Max)
	b := between(g.rng, r.Min, r.Max)
	if a < b {
		a, b = b, a
	}
	return binaryQuestion(a, "-", "-", b, a-b)
}

// division builds the dividend from divisor × multiplier so the quotient is
// always exact.
func (g *Generator) division(r Rules) *Question {
	divisor := between(g.rng, 1, r.Max)
	multiple := between(g.rng, r.Min, r.Max)
	dividend := divisor * multiple
	return binaryQuestion(dividend, "÷", `\div`, divisor, dividend/divisor)
}

func (g *Generator) fractionProduct() (*Question, error) {
	a, err := g.Fraction(g.config.FractionMin, g.config.FractionMax)
	if err != nil {
		return nil, err
	}
	b, err := g.Fraction(g.config.FractionMin, g.config.FractionMax)
	if err != nil {
		return nil, err
	}
	return &Question{
		Text:       fmt.Sprintf(`\(\displaystyle %s \times %s\)`, texFrac(a), texFrac(b)),
		Plain:      fmt.Sprintf("%s × %s", a, b),
		Answer:     a.Mul(b).String(),
		AnswerType: AnswerTypeFraction,
	}, nil
}

func binaryQuestion(a int, plainOp, texOp string, b, answer int) *Question {
	return &Question{
		Text:       fmt.Sprintf(`\(\displaystyle %d %s %d\)`, a, texOp, b),
		Plain:      fmt.Sprintf("%d %s %d", a, plainOp, b),
		Answer:     strconv.Itoa(answer),
		AnswerType: AnswerTypeInteger,
	}
}

func texFrac(f Fraction) string {
	return fmt.Sprintf(`\frac{%d}{%d}`, f.Num, f.Den)
}
