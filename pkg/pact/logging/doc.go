// Package logging provides structured logging configuration for the pact
// codec and file-lock helper.
//
// The matching engine itself never logs (it is pure and synchronous, see
// spec.md §5); this package exists for pactfile's load/merge/lock-retry
// activity. It wraps log/slog with configurable level and output format.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Debug("pact file merged", "path", path, "interactions", len(p.Interactions))
//
// # Integration
//
// Components should accept a *slog.Logger in their constructor or via a
// setter. If no logger is provided, use logging.Nop() for a no-op logger.
package logging
