package logging

// Field names shared by every component so log lines can be filtered consistently.
const (
	FieldFile        = "file_path"
	FieldFormat      = "format"
	FieldContentType = "content_type"
	FieldParser      = "parser"
	FieldLine        = "line"
	FieldIndex       = "index"
	FieldAnomaly     = "anomaly"
	FieldPolicy      = "anomaly_policy"
	FieldCategory    = "category"
	FieldError       = "error"
	FieldCount       = "count"
	FieldSkipped     = "skipped"
	FieldSize        = "size_bytes"
	FieldEncoding    = "encoding"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
)
