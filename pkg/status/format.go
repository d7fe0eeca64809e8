// Copyright 2025 the filefn authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"fmt"

	"github.com/fatih/color"
	"gitlab.com/tozd/go/errors"

	"github.com/filefn/filefn/pkg/vfsclient"
)

// timeouter is the net.Error-style marker for timeout-classified errors
type timeouter interface {
	Timeout() bool
}

// ⏰ IsTimeout reports whether err is timeout-classified: either the raw
// callback wait timeout or an operation error marked with Timeout()
func IsTimeout(err error) bool {
	if errors.Is(err, vfsclient.ErrWaitTimeout) {
		return true
	}
	var t timeouter
	if errors.As(err, &t) {
		return t.Timeout()
	}
	return false
}

// 🎨 Formatter renders call results for console output
type Formatter interface {
	FormatResult(t *Tracker) string
	FormatError(err error) string
}

// 🖌️ ConsoleFormatter is the default colored formatter
type ConsoleFormatter struct{}

// 🏭 NewConsoleFormatter creates a console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatResult renders one finished call as a single line
func (f *ConsoleFormatter) FormatResult(t *Tracker) string {
	var symbol string
	var attr color.Attribute
	switch t.Phase() {
	case PhaseCompleted:
		symbol = "✓"
		attr = color.FgGreen
	case PhaseTimedOut:
		symbol = "⏱"
		attr = color.FgYellow
	case PhaseFailed:
		symbol = "✗"
		attr = color.FgRed
	default:
		symbol = "…"
		attr = color.FgBlue
	}

	return fmt.Sprintf("%s %-7s %s %s",
		color.New(attr).Sprint(symbol),
		t.Operation(),
		t.Source(),
		color.New(color.Faint).Sprint(t.Phase().String()))
}

// FormatError renders an error message
func (f *ConsoleFormatter) FormatError(err error) string {
	return color.New(color.FgRed).Sprintf("error: %v", err)
}
