package history

import "time"

const SchemaVersion = 1

// Run is one recorded scan: how many files were processed and what the
// extraction found.
type Run struct {
	ID             string        `json:"id"`
	Timestamp      time.Time     `json:"timestamp"`
	FileCount      int           `json:"file_count"`
	ClassCount     int           `json:"class_count"`
	InterfaceCount int           `json:"interface_count"`
	EnumCount      int           `json:"enum_count"`
	ErrorCount     int           `json:"error_count"`
	Duration       time.Duration `json:"duration"`
}
