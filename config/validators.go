package config

import e "github.com/pkg/errors"

// IntRangeValidator checks if the supplied integer value lies in the
// inclusive boundaries of `min` and `max`.
func IntRangeValidator(min, max int) func(val int) error {
	return func(val int) error {
		if val < min {
			return e.Errorf("value may not be less than %d", min)
		}

		if val > max {
			return e.Errorf("value may not be more than %d", max)
		}

		return nil
	}
}
