package config

// Application constants
const (
	AppName = "rmdcalc"

	// EnvPrefix namespaces every environment variable, e.g. RMD_LOGGING_LEVEL
	EnvPrefix = "RMD"

	// DefaultDotEnvFile is read from the working directory when present
	DefaultDotEnvFile = ".env"

	DefaultSheetName        = "RMD Projection"
	DefaultExportFilename   = "rmd_projection.xlsx"
	DefaultLogFile          = "logs/rmdcalc.log"
	MaxSheetNameLength      = 31
	sheetNameForbiddenChars = `[]:*?/\`
)

// Export formats
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// Log outputs
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"
	OutputBoth   = "both"
)

// configFileLocations are searched in order by Load
var configFileLocations = []string{
	"rmdcalc.yaml",
	"configs/rmdcalc.yaml",
}
