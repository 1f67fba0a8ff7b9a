package models

import "errors"

// Error kinds surfaced by a scenario run. Callers match with errors.Is.
var (
	ErrTargetNotFound          = errors.New("target property not found")
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
	ErrMissingForecastRow      = errors.New("missing forecast row")
	ErrMissingAmortization     = errors.New("missing amortization")
	ErrScenarioTypeUnknown     = errors.New("unknown scenario type")
	ErrInvalidRequest          = errors.New("invalid request")
)

// ErrorCode maps an error to a stable machine-readable code
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTargetNotFound):
		return "target_not_found"
	case errors.Is(err, ErrCollaboratorUnavailable):
		return "collaborator_unavailable"
	case errors.Is(err, ErrMissingForecastRow):
		return "missing_forecast_row"
	case errors.Is(err, ErrMissingAmortization):
		return "missing_amortization"
	case errors.Is(err, ErrScenarioTypeUnknown):
		return "scenario_type_unknown"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	default:
		return "internal"
	}
}
