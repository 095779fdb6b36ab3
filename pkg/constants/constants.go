// Package constants provides shared constants for the perspective-retraites application.
package constants

// Reference figures used by every conversion.
const (
	// TotalReferenceAmount is the yearly retirement-benefit outlay (2025) in euros.
	TotalReferenceAmount = 420e9

	// DaysPerYear is the average calendar year length, leap years included.
	DaysPerYear = 365.25

	// MonthsPerYear is the number of synthetic months in a year
	MonthsPerYear = 12

	// SecondsPerMinute is the number of seconds in a minute
	SecondsPerMinute = 60

	// SecondsPerHour is the number of seconds in an hour
	SecondsPerHour = 60 * SecondsPerMinute

	// SecondsPerDay is the number of seconds in a day
	SecondsPerDay = 24 * SecondsPerHour

	// SecondsPerYear is the number of seconds in a 365.25-day year
	SecondsPerYear = DaysPerYear * SecondsPerDay

	// SecondsPerMonth is one twelfth of SecondsPerYear
	SecondsPerMonth = (DaysPerYear / MonthsPerYear) * SecondsPerDay

	// MillisecondsPerSecond is used for the independent millisecond grain
	MillisecondsPerSecond = 1000

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Magnitude thresholds for comparison counts.
const (
	Thousand = 1e3
	Million  = 1e6
	Billion  = 1e9
)

// Calculator modes.
const (
	ModeTemporal  = "temporal"
	ModeFinancial = "financial"
)

// CustomExampleID is the catalog sentinel meaning "hand-typed amount".
const CustomExampleID = "autre"

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// EnvPrefix prefixes environment overrides (RETRAITES_SERVER_ADDRESS, ...)
	EnvPrefix = "RETRAITES"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum JSON request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultShareURL is the address quoted in share messages
	DefaultShareURL = "https://perspective-retraites.fr/"
)

// Persistence defaults
const (
	// CalculationCountKey is the durable key of the calculation counter
	CalculationCountKey = "calculationCount"

	// DefaultPersistDelayMillis debounces counter writes
	DefaultPersistDelayMillis = 400

	// DefaultStoragePath is the SQLite database location
	DefaultStoragePath = "data/perspective-retraites.db"

	// InstallPromptThreshold is the number of calculations after which the
	// install prompt may be offered.
	InstallPromptThreshold = 2
)
