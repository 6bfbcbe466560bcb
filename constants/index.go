package constants

const (
	COACH_TYPE_AC      = "AC"
	COACH_TYPE_SLEEPER = "Sleeper"
	COACH_TYPE_GENERAL = "General"

	// Sentinel used by the report filter to skip the type condition.
	COACH_TYPE_ALL = "All"
)

const (
	ERROR_INPUT            = "Invalid input"
	VALIDATION_FAILED      = "Validation failed"
	INVALID_DATE           = "Date must be in YYYY-MM-DD format"
	COACH_NOT_FOUND        = "Coach not found"
	COACH_CREATE_FAILED    = "Could not create coach"
	COACH_FETCH_FAILED     = "Could not fetch coaches"
	MOVEMENT_CREATE_FAILED = "Could not record movement"
	MOVEMENT_FETCH_FAILED  = "Could not fetch movements"
	REPORT_FAILED          = "Could not build report"
	EXPORT_FAILED          = "Could not export report"
)
