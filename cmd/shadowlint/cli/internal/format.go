package internal

import "github.com/google/uuid"

type Format string

const (
	JSON  Format = "json"
	Table Format = "table"
)

var ValidFormats = []Format{JSON, Table}

// ValidateFormat returns a valid format or the default format if the given format is invalid
func ValidateFormat(f Format) Format {
	for _, valid := range ValidFormats {
		if f == valid {
			return f
		}
	}
	return Table
}

func NewReportID() string {
	return uuid.Must(uuid.NewRandom()).String()
}
