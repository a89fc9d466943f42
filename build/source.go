package build

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mommy/common"
)

// ErrWrongFileType is returned when a source path lacks the source extension.
var ErrWrongFileType = errors.New("source file must end in " + common.SrcFileExtension)

// LoadSource reads the lines of a source file.
func LoadSource(path string) ([]string, error) {
	if filepath.Ext(path) != common.SrcFileExtension {
		return nil, fmt.Errorf("%s: %w", path, ErrWrongFileType)
	}

	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}

	return SplitLines(string(buff)), nil
}

// OutputPath returns the path of the C file generated for a source file.  If
// `outputDir` is empty, the C file is placed next to the source.
func OutputPath(srcPath, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath)) + common.CFileExtension

	if outputDir == "" {
		return filepath.Join(filepath.Dir(srcPath), base)
	}

	return filepath.Join(outputDir, base)
}

// WriteOutput writes generated C to disk, creating the output directory if
// necessary.
func WriteOutput(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write C file: %w", err)
	}

	return nil
}
