package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldMetricID    = "metric_id"
	FieldFilterName  = "filter_name"
	FieldIndex       = "index"
	FieldStreamId    = "stream_id"
	FieldPartitionId = "partition_id"
)
