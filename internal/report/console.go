// Package report prints operator facing status lines, colored in the
// same scheme as the original console tooling: green for success, red for
// failure, yellow for notices and cyan for details. Keeping presentation
// here lets the drivers be tested without capturing console output.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
)

type Console struct {
	success *color.Color
	failure *color.Color
	notice  *color.Color
	detail  *color.Color
}

func NewConsole() *Console {
	return &Console{
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		notice:  color.New(color.FgYellow),
		detail:  color.New(color.FgCyan),
	}
}

func (c *Console) Successf(format string, args ...interface{}) {
	c.success.Printf(format+"\n", args...)
}

func (c *Console) Failuref(format string, args ...interface{}) {
	c.failure.Printf(format+"\n", args...)
}

func (c *Console) Noticef(format string, args ...interface{}) {
	c.notice.Printf(format+"\n", args...)
}

func (c *Console) Detailf(format string, args ...interface{}) {
	c.detail.Printf(format+"\n", args...)
}

func (c *Console) Plainf(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// JSON renders a value as indented JSON for dry run previews.
func JSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
