package toolchain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ExitError is returned when a compiled program exits with a non-zero status.
type ExitError struct {
	Code int
}

func (ee *ExitError) Error() string {
	return fmt.Sprintf("program exited with code %d", ee.Code)
}

// CompileError is returned when the C compiler runs but rejects the input.
type CompileError struct {
	Output string
}

func (ce *CompileError) Error() string {
	return "C compile error:\n" + ce.Output
}

// ExecutablePath returns the path of the executable built from a C file.
func ExecutablePath(cPath string) string {
	exePath := strings.TrimSuffix(cPath, filepath.Ext(cPath))

	if runtime.GOOS == "windows" {
		return exePath + ".exe"
	}

	return exePath
}

// Compile builds an executable from a C file by running `cc cPath -o exePath
// flags...`.
func Compile(cc string, flags []string, cPath, exePath string) error {
	args := append([]string{cPath, "-o", exePath}, flags...)
	cmd := exec.Command(cc, args...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// the compiler was found but there were compile errors
			return &CompileError{Output: out.String()}
		}

		// probably couldn't find the compiler
		return fmt.Errorf("failed to run C compiler `%s`: %w", cc, err)
	}

	return nil
}

// Run executes a compiled program with the given standard streams and waits for
// it to exit.
func Run(exePath string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.Command(runnablePath(exePath))
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}

		return fmt.Errorf("failed to run program: %w", err)
	}

	return nil
}

// runnablePath prefixes bare relative paths with `./` so they are not looked up
// in PATH.
func runnablePath(exePath string) string {
	if filepath.IsAbs(exePath) || strings.ContainsRune(exePath, filepath.Separator) {
		return exePath
	}

	return "." + string(filepath.Separator) + exePath
}
