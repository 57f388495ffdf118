package errors

// ValidateVertex checks that v addresses one of n dense vertex slots.
func ValidateVertex(v, n int) error {
	if v < 0 || v >= n {
		return New(ErrCodeUnknownVertex, "vertex %d out of range [0, %d)", v, n)
	}
	return nil
}

// ValidateEdge checks that v and u are distinct in-range vertices.
// Self-pairs are rejected: the skeleton is a simple graph.
func ValidateEdge(v, u, n int) error {
	if err := ValidateVertex(v, n); err != nil {
		return err
	}
	if err := ValidateVertex(u, n); err != nil {
		return err
	}
	if v == u {
		return New(ErrCodeInvalidEdge, "self-pair (%d, %d)", v, u)
	}
	return nil
}

// ValidateSides checks a polygon side count for the prism family.
func ValidateSides(n, min int) error {
	if n < min {
		return New(ErrCodeInvalidInput, "need at least %d sides, got %d", min, n)
	}
	return nil
}
