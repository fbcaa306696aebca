package engine

import "github.com/rs/zerolog"

// Tracer narrates in-trial events for debug tooling (spec §2.11). It is a
// thin wrapper over *zerolog.Logger so the engine's hot path pays only a
// boolean check when tracing is disabled; the CLI (cmd/demonclash) decides
// whether to pass NoopTracer (production run) or a tracer over its own
// logger (-debug/-verbose, spec §6).
type Tracer struct {
	Logger  *zerolog.Logger
	Verbose bool
}

// Tracef emits a line-oriented trace message. No-op if the tracer has no
// logger attached, so callers never need to guard every call site.
func (t *Tracer) Tracef(format string, args ...any) {
	if t == nil || t.Logger == nil {
		return
	}
	t.Logger.Debug().Msgf(format, args...)
}

// Bannerf emits a verbose-only per-turn banner (the extra narration
// -verbose adds on top of -debug, spec §6).
func (t *Tracer) Bannerf(format string, args ...any) {
	if t == nil || t.Logger == nil || !t.Verbose {
		return
	}
	t.Logger.Debug().Msgf(format, args...)
}

// NoopTracer is a tracer with tracing fully disabled.
var NoopTracer = &Tracer{}
