// Package config loads rmdcalc configuration.
//
// # Sources
//
// Values are resolved in this order, later sources winning:
//
//	1. Default()
//	2. rmdcalc.yaml or configs/rmdcalc.yaml in the working directory
//	3. a .env file in the working directory (never overrides real env)
//	4. environment variables with the RMD_ prefix
//
// # Environment Variables
//
//	RMD_LOGGING_LEVEL=debug
//	RMD_LOGGING_FORMAT=text
//	RMD_LOGGING_OUTPUT=file
//	RMD_LOGGING_FILE_PATH=logs/rmdcalc.log
//	RMD_PROJECTION_STRICT=true
//	RMD_EXPORT_FORMAT=csv
//	RMD_EXPORT_SHEET_NAME="RMD Projection"
//	RMD_EXPORT_OUTPUT_DIR=reports
//	RMD_EXPORT_DEFAULT_FILENAME=rmd_projection.xlsx
//	RMD_METRICS_TEXTFILE=/var/lib/node_exporter/rmdcalc.prom
//
// # Example File
//
//	logging:
//	  level: info
//	  output: file
//	export:
//	  format: xlsx
//	  output_dir: reports
package config
