package circulation

import (
	"errors"
	"time"
)

// Option defines a functional option for configuring a Library.
type Option func(*Library) error

// WithLogger sets the logger for the Library.
//
// Debug level: registrations and catalog changes
// Info level: loan issuance and returns
// Warn level: skipped records during batch import.
func WithLogger(logger Logger) Option {
	return func(l *Library) error {
		if logger == nil {
			return errors.Join(ErrValidation, ErrNilLoggerSupplied)
		}

		l.logger = logger

		return nil
	}
}

// WithFeePolicy sets the fee policy stamped onto every newly issued loan.
// Loans already in the log keep the policy they were issued with.
func WithFeePolicy(policy FeePolicy) Option {
	return func(l *Library) error {
		if policy.GracePeriodDays < 0 || policy.DailyRate < 0 {
			return errors.Join(ErrValidation, ErrInvalidFeePolicySupplied)
		}

		l.feePolicy = policy

		return nil
	}
}

// WithClock sets the time source used to evaluate "today" for outstanding
// fees in Statistics. Defaults to time.Now; tests inject a fixed clock.
func WithClock(clock func() time.Time) Option {
	return func(l *Library) error {
		if clock == nil {
			return errors.Join(ErrValidation, ErrNilClockSupplied)
		}

		l.clock = clock

		return nil
	}
}
