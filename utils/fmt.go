package utils

import (
	"errors"
	"fmt"
)

func AppendfNoEscape(buf []byte, format string, v ...any) []byte {
	return fmt.Appendf(buf, format, v...)
}

func SprintfNoEscape(format string, v ...any) string {
	return fmt.Sprintf(format, v...)
}

// ErrorfNoEscape fmt.Errorf, but skips formatting when there are no arguments
func ErrorfNoEscape(format string, v ...any) error {
	if len(v) == 0 {
		return errors.New(format)
	}
	return fmt.Errorf(format, v...)
}
