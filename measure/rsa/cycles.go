package rsa

// Phase labels of the respiration signal.
const (
	PhaseExpiration  = 0
	PhaseInspiration = 1
)

// Cycles holds respiratory cycle boundaries derived from a phase-labeled
// respiration signal.
type Cycles struct {
	// InspirationOnsets are the sample indices where inspiration begins.
	InspirationOnsets []int

	// ExpirationOnsets are the sample indices where expiration begins.
	ExpirationOnsets []int

	// CycleLengths are the sample distances between consecutive
	// inspiration onsets.
	CycleLengths []int
}

// ExtractCycles finds cycle boundaries: samples where the phase label flips
// to inspiration (or expiration) and the completion fraction restarts at
// zero. Both onset sequences are strictly increasing by construction. Zero
// onsets found is not an error; the estimators treat it as "no cycles".
func ExtractCycles(phase, completion []float64) Cycles {
	var c Cycles

	n := len(phase)
	if len(completion) < n {
		n = len(completion)
	}

	for i := 0; i < n; i++ {
		if completion[i] != 0 {
			continue
		}

		switch phase[i] {
		case PhaseInspiration:
			c.InspirationOnsets = append(c.InspirationOnsets, i)
		case PhaseExpiration:
			c.ExpirationOnsets = append(c.ExpirationOnsets, i)
		}
	}

	for i := 1; i < len(c.InspirationOnsets); i++ {
		c.CycleLengths = append(c.CycleLengths, c.InspirationOnsets[i]-c.InspirationOnsets[i-1])
	}

	return c
}

// alignCenters keeps the expiration onsets that fall strictly after the
// first inspiration onset, so each remaining onset marks the center of one
// breath cycle. When the counts match it drops the trailing expiration;
// anything other than exactly one fewer center than inspiration onsets
// flags a data-quality warning, and the caller proceeds with the best-effort
// alignment.
func alignCenters(inspiration, expiration []int) (centers []int, warn bool) {
	if len(inspiration) == 0 {
		return nil, len(expiration) != 0
	}

	first := inspiration[0]
	for _, e := range expiration {
		if e > first {
			centers = append(centers, e)
		}
	}

	if len(centers) == len(inspiration) {
		centers = centers[:len(centers)-1]
	}

	if len(inspiration)-len(centers) != 1 {
		warn = true
	}

	return centers, warn
}
