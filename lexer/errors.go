package lexer

import "fmt"

// Error represents an error while lexing.
//
// It complies with the calc.Error interface.
type Error struct {
	Msg string
	Pos Position
}

// Errorf creates a new Error at the given position.
func Errorf(pos Position, format string, args ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

func (e *Error) Message() string    { return e.Msg } // nolint: golint
func (e *Error) Position() Position { return e.Pos } // nolint: golint

// Error formats the error with FormatError.
func (e *Error) Error() string { return FormatError(e.Pos, e.Msg) }

// FormatError formats an error in the form "[<filename>:]<line>:<pos>: <message>"
func FormatError(pos Position, message string) string {
	return pos.String() + ": " + message
}
