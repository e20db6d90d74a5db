package problemgen

// Generator produces randomized math questions from an injected random
// source. It holds no state besides the source, so two Generators built
// from equally seeded sources produce the same questions.
type Generator struct {
	rng    Rand
	config Config
}

// New creates a Generator drawing from rng.
func New(rng Rand, cfg Config) *Generator {
	return &Generator{rng: rng, config: cfg}
}

// validate runs the configured validators in order.
func (g *Generator) validate(q *Question, input GenerateInput) error {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return verr
		}
	}
	return nil
}
