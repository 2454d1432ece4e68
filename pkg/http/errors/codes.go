package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeInvalidGameID    = "invalid_game_id"
	ErrCodeInvalidPlayerID  = "invalid_player_id"
	ErrCodeInvalidRound     = "invalid_round"

	// Planning errors
	ErrCodeInsufficientData = "insufficient_data"

	// Resource errors
	ErrCodeGameNotFound    = "game_not_found"
	ErrCodeRoundNotFound   = "round_not_found"
	ErrCodeCountryNotFound = "country_not_found"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
)
