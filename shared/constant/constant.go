package constant

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
	PqErrorCodeNotNull         = "23502"
	PqErrorCodeInvalidText     = "22P02"
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
	NullValue      = "null"
)

// WeekLength is the number of days added to the start date of a weekly
// availability window; both ends of the window are inclusive.
const WeekLength = 7

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelConsoleScopeName    = "console"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
)

const (
	CacheReportPrefix = "report"
	CacheKeySeparator = ":"
)

const (
	EventCreated = "created"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	Asterix = "*"
	Empty   = ""
)
