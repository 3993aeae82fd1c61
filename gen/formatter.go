package gen

import (
	"fmt"
	"os/exec"
	"strings"
)

// Formatter beautifies a generated file in place. Formatting runs after the
// file has been written, so when it fails the unformatted file stays behind.
type Formatter interface {
	Format(path string) error
}

var (
	_ Formatter = &goFormatter{}
	_ Formatter = &nopFormatter{}
)

type goFormatter struct {
}

func NewGoFormatter() *goFormatter {
	return &goFormatter{}
}

func (f *goFormatter) Format(path string) error {
	out, err := exec.Command("gofmt", "-w", path).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("gofmt -w %v: %v: %v", path, err, msg)
		}
		return fmt.Errorf("gofmt -w %v: %w", path, err)
	}
	return nil
}

type nopFormatter struct {
}

func NewNopFormatter() *nopFormatter {
	return &nopFormatter{}
}

func (f *nopFormatter) Format(path string) error {
	return nil
}
