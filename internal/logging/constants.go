package logging

// Field names shared by every component so log output stays greppable.
const (
	FieldFile       = "file_path"
	FieldGroup      = "group"
	FieldComponent  = "component"
	FieldCount      = "count"
	FieldSkipped    = "skipped"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldOrdinal    = "installment"
	FieldDocument   = "document_number"
	FieldDeadline   = "deadline"
	FieldSource     = "source"
	FieldReason     = "reason"
	FieldError      = "error"
	FieldOutputFile = "output_file"
	FieldInputPath  = "input_path"
)
