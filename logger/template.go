package logger

import "fmt"

// Message templates shared by client components.
const (
	InitializedTemplate = "%s was initialized."
	operationTemplate   = "[%s.%s]: %s"
)

// Operation renders message with the "[component.operation]: " prefix.
func (l *Logger) Operation(operation, message string) string {
	if l.component == "" {
		return fmt.Sprintf("[%s]: %s", operation, message)
	}
	return fmt.Sprintf(operationTemplate, l.component, operation, message)
}

// Initialized records that the scoped component finished construction.
func (l *Logger) Initialized() {
	l.Info(fmt.Sprintf(InitializedTemplate, l.component))
}

// DebugOp logs a debug record templated for operation.
func (l *Logger) DebugOp(operation, message string, fields ...map[string]interface{}) {
	l.Debug(l.Operation(operation, message), opFields(operation, nil, fields)...)
}

// InfoOp logs an info record templated for operation.
func (l *Logger) InfoOp(operation, message string, fields ...map[string]interface{}) {
	l.Info(l.Operation(operation, message), opFields(operation, nil, fields)...)
}

// ErrorOp logs an error record templated for operation.
func (l *Logger) ErrorOp(operation, message string, err error, fields ...map[string]interface{}) {
	l.Error(l.Operation(operation, message), opFields(operation, err, fields)...)
}

func opFields(operation string, err error, fields []map[string]interface{}) []map[string]interface{} {
	base := map[string]interface{}{FieldOperation: operation}
	if err != nil {
		base[FieldError] = err.Error()
	}
	return append([]map[string]interface{}{base}, fields...)
}
