package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Tier represents a difficulty tier. Tiers 1-4 are defined; any other value
// uses the rules of tier 1.
type Tier int

const (
	Tier1 Tier = iota + 1 // grades 1-3
	Tier2                 // grade 4
	Tier3                 // grades 5-6
	Tier4                 // grades 6-7
)

// AllTiers returns the defined tiers in display order.
func AllTiers() []Tier {
	return []Tier{Tier1, Tier2, Tier3, Tier4}
}

// Operator is an arithmetic operation.
type Operator string

const (
	OpAdd         Operator = "add"
	OpSubtract    Operator = "subtract"
	OpDivide      Operator = "divide"
	OpFractionMul Operator = "fraction-multiply"
)

// Symbol returns the plain-text symbol for the operator.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpDivide:
		return "÷"
	case OpFractionMul:
		return "×"
	default:
		return string(o)
	}
}

// Rules is the operator set and operand range for a tier.
type Rules struct {
	Operators []Operator
	Min, Max  int
}

// Allows reports whether op is in the rule's operator set.
func (r Rules) Allows(op Operator) bool {
	for _, o := range r.Operators {
		if o == op {
			return true
		}
	}
	return false
}

// Rules returns the operator set and numeric range for the tier.
func (t Tier) Rules() Rules {
	switch t {
	case Tier2:
		return Rules{Operators: []Operator{OpAdd, OpSubtract, OpDivide}, Min: 1, Max: 20}
	case Tier3:
		return Rules{Operators: []Operator{OpAdd, OpSubtract, OpDivide, OpFractionMul}, Min: 1, Max: 30}
	case Tier4:
		return Rules{Operators: []Operator{OpAdd, OpSubtract, OpDivide, OpFractionMul}, Min: 1, Max: 50}
	default:
		return Rules{Operators: []Operator{OpAdd, OpSubtract}, Min: 1, Max: 10}
	}
}

// Known reports whether t is one of the defined tiers.
func (t Tier) Known() bool {
	return t >= Tier1 && t <= Tier4
}

// GradeLabel returns the school grades a tier is aimed at.
func (t Tier) GradeLabel() string {
	switch t {
	case Tier1:
		return "1st to 3rd Grade"
	case Tier2:
		return "4th Grade"
	case Tier3:
		return "5th to 6th Grade"
	case Tier4:
		return "6th to 7th Grade"
	default:
		return "1st to 3rd Grade"
	}
}

func (t Tier) String() string {
	return strconv.Itoa(int(t))
}

// ParseTier parses a tier number. Only numeric syntax is checked; unknown
// numbers are accepted and fall back to tier 1 rules.
func ParseTier(s string) (Tier, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid tier %q: must be a number", s)
	}
	return Tier(n), nil
}
