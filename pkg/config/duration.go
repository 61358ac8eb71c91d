package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration returns an error naming key when d is not positive.
//
//	if err := ValidatePositiveDuration("GENERATOR_TIMEOUT", timeout); err != nil {
//	    return err
//	}
func ValidatePositiveDuration(key string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive, got %v", key, d)
	}
	return nil
}
