package commands

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about transfer results
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogResult logs the outcome of one file function call
func (u *UserLogger) LogResult(operation, source string, err error) {
	if err == nil {
		msg := fmt.Sprintf("%s %s", operation, source)
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✓"}).Println(msg)
		u.log.Info().Str("operation", operation).Str("source", source).Msg("transfer succeeded")
		return
	}

	msg := fmt.Sprintf("%s %s", operation, source)
	pterm.Error.WithPrefix(pterm.Prefix{Text: "✗"}).Println(msg)
	pterm.Error.Println(err)
	u.log.Error().Err(err).Str("operation", operation).Str("source", source).Msg("transfer failed")
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
		u.log.Warn().Msg(description)
	}
}
