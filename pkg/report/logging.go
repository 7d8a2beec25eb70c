package report

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/patchrc/pkg/patch"
)

// 📢 UserLogger provides user-friendly live feedback as results come in
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogResult logs one transform outcome with appropriate prefix and printer
func (u *UserLogger) LogResult(res patch.ApplyResult) {
	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch res.Outcome {
	case patch.OutcomeApplied:
		prefix = "✨"
		action = "Applied"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case patch.OutcomeAlreadyApplied:
		prefix = "⏭️"
		action = "Already applied"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case patch.OutcomeNotFound:
		prefix = "🔍"
		action = "Not found"
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: prefix})
	case patch.OutcomeAmbiguousMatch:
		prefix = "⚠️"
		action = "Ambiguous"
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: prefix})
	default:
		prefix = "❌"
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, res.TransformID)
	if res.Detail != "" {
		msg += fmt.Sprintf(" (%s)", res.Detail)
	}
	printer.Println(msg)

	u.log.Info().
		Str("transform", res.TransformID).
		Str("path", res.Path).
		Stringer("outcome", res.Outcome).
		Msg(res.Detail)
}

// 📊 LogSummary logs the final per-outcome counts
func (u *UserLogger) LogSummary(s Summary) {
	if s.Ok() {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(s.String())
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(s.String())
	}
	u.log.Info().Msg(s.String())
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
