package report

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nalgeon/be"
)

func TestErrorKindIsError(t *testing.T) {
	var err error = DivideByZero
	be.True(t, errors.Is(err, DivideByZero))
	be.True(t, !errors.Is(err, MathOnString))
	be.Equal(t, DivideByZero.Name(), "DivideByZero")
}

func TestEveryKindHasNameAndMessage(t *testing.T) {
	for k := MissingArguments; k <= UnknownPackage; k++ {
		_, hasName := kindNames[k]
		_, hasMsg := kindMessages[k]
		be.True(t, hasName)
		be.True(t, hasMsg)
	}
}

func TestCompileErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("transpile: %w", Raise(7, AccessViolation, "replace arr in 5 with 1"))

	be.Err(t, err, AccessViolation)

	var ce *CompileError
	be.True(t, errors.As(err, &ce))
	be.Equal(t, ce.Line, 7)
	be.Equal(t, ce.Short(), "line 7: AccessViolation")
}

func TestCompileErrorEndOfFile(t *testing.T) {
	ce := Raise(0, UnclosedBlock, "")
	be.Equal(t, ce.Short(), "end of file: UnclosedBlock")
	be.Err(t, ce, "end of file")
}

func TestUnknownKindName(t *testing.T) {
	be.Equal(t, ErrorKind(99).Name(), "ErrorKind(99)")
	be.Equal(t, ErrorKind(99).Error(), "ErrorKind(99)")
}
