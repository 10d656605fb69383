package biquad

// Chain is a cascade of biquad sections processed in series.
type Chain struct {
	sections []*Section
}

// NewChain creates a cascade from the given per-section coefficients.
func NewChain(coeffs []Coefficients) *Chain {
	sections := make([]*Section, len(coeffs))
	for i, c := range coeffs {
		sections[i] = NewSection(c)
	}

	return &Chain{sections: sections}
}

// ProcessSample runs one sample through all sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for _, s := range c.sections {
		x = s.ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block of samples in-place through all sections.
func (c *Chain) ProcessBlock(buf []float64) {
	for _, s := range c.sections {
		s.ProcessBlock(buf)
	}
}

// Reset clears the state of every section.
func (c *Chain) Reset() {
	for _, s := range c.sections {
		s.Reset()
	}
}

// NumSections returns the number of cascaded sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Order returns the overall filter order (2 per full section; first-order
// sections with B2 == A2 == 0 count as 1).
func (c *Chain) Order() int {
	order := 0

	for _, s := range c.sections {
		if s.B2 == 0 && s.A2 == 0 {
			order++
		} else {
			order += 2
		}
	}

	return order
}
