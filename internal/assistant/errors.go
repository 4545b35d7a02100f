package assistant

import "fmt"

// MissingDataError means a required field was absent from the model's
// structured extraction.
type MissingDataError struct {
	Field string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("필수 일정 데이터가 누락되었습니다: %s", e.Field)
}

// MissingDateError means the delete message carried no recognizable
// "<N>월 <N>일" date substring.
type MissingDateError struct{}

func (e *MissingDateError) Error() string {
	return "삭제할 일정의 날짜를 찾을 수 없습니다."
}

// ExtractionError means the model's reply could not be read as the
// requested JSON structure.
type ExtractionError struct {
	Raw string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to parse model extraction: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ValidationError means a required field was missing on a direct
// calendar operation (e.g. update without a title).
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("필수 항목이 비어 있습니다: %s", e.Field)
}
