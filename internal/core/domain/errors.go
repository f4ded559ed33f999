package domain

import "errors"

// ============================================================================
// Rate Errors
// ============================================================================

// Validation errors
var (
	ErrEmptyRate            = errors.New("rate notation is required, e.g. '24% NA/MV', '6% TV' or '10% EA'")
	ErrUnrecognizedRate     = errors.New("unrecognized rate notation: use '24% NA/MV' (nominal) or '6% TV' / '10% EA' (effective)")
	ErrRateBelowFloor       = errors.New("rate cannot be <= -100% (value <= -1)")
	ErrInvalidPeriod        = errors.New("period must be positive (1, 3, 6, 12)")
	ErrInvalidRateKind      = errors.New("rate kind must be 'effective' or 'nominal'")
	ErrInvalidNominalPeriod = errors.New("nominal rate requires a positive nominal period not shorter than the compounding period")
	ErrInvalidAnticipated   = errors.New("anticipated rate must be < 100% per period")
	ErrNegativePrecision    = errors.New("precision cannot be negative")
)

// ============================================================================
// Comparison Errors
// ============================================================================

var (
	ErrRankingNotFound   = errors.New("ranking not found")
	ErrNoOptions         = errors.New("at least one option is required")
	ErrOptionMissingRate = errors.New("each option must include a nominal or effective rate")
	ErrInvalidMode       = errors.New("mode must be 'credit' or 'investment'")
)

// ============================================================================
// Calculator Errors
// ============================================================================

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidPeriods = errors.New("invalid number of periods")
	ErrResultOverflow = errors.New("result is too large to represent: reduce the amount, rate or number of periods")
)

// ============================================================================
// News Errors
// ============================================================================

var (
	ErrNewsUnavailable = errors.New("news provider is not configured")
	ErrNewsFetchFailed = errors.New("news provider request failed")
)
