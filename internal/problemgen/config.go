package problemgen

// Config controls the behavior of the Generator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// FractionMin and FractionMax bound numerators and denominators of
	// fraction operands, regardless of tier.
	FractionMin int
	FractionMax int

	// MaxFractionAttempts caps rejection sampling for a coprime pair.
	MaxFractionAttempts int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerFormatValidator{},
			&MathCheckValidator{},
		},
		FractionMin:         1,
		FractionMax:         9,
		MaxFractionAttempts: 1000,
	}
}
