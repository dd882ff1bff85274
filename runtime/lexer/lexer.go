// Package lexer turns C source text into a lazy stream of classified lexemes.
//
// The lexer borrows its source buffer: every Lexeme's Text is a substring of
// it and nothing is copied. Scanning never fails; input that matches no rule
// becomes an Unknown lexeme and scanning resumes right after it.
package lexer

import (
	"fmt"
	"iter"
	"time"
	"unicode/utf8"

	"github.com/opal-lang/clex/core/invariant"
)

// LexerOpt represents a lexer configuration option
type LexerOpt func(*LexerConfig)

// TelemetryMode controls telemetry collection (production-safe)
type TelemetryMode int

const (
	TelemetryOff    TelemetryMode = iota // Zero overhead (default)
	TelemetryBasic                       // Token counts only
	TelemetryTiming                      // Token counts + timing per kind
)

// DebugLevel controls debug tracing (development only)
type DebugLevel int

const (
	DebugOff      DebugLevel = iota // No debug info (default)
	DebugPaths                      // Rule selection per lexeme
	DebugDetailed                   // Every rule measurement
)

// LexerConfig holds lexer configuration
type LexerConfig struct {
	telemetry TelemetryMode
	debug     DebugLevel
}

// WithTelemetryBasic enables basic telemetry (token counts only)
func WithTelemetryBasic() LexerOpt {
	return func(c *LexerConfig) {
		c.telemetry = TelemetryBasic
	}
}

// WithTelemetryTiming enables timing telemetry (counts + timing per kind)
func WithTelemetryTiming() LexerOpt {
	return func(c *LexerConfig) {
		c.telemetry = TelemetryTiming
	}
}

// WithDebugPaths records which rule produced each lexeme
func WithDebugPaths() LexerOpt {
	return func(c *LexerConfig) {
		c.debug = DebugPaths
	}
}

// WithDebugDetailed also records every rule measured at each position
func WithDebugDetailed() LexerOpt {
	return func(c *LexerConfig) {
		c.debug = DebugDetailed
	}
}

// TokenTelemetry holds per-kind telemetry (production-safe)
type TokenTelemetry struct {
	Kind      TokenKind
	Count     int
	Bytes     int
	TotalTime time.Duration
	AvgTime   time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// DebugEvent holds debug tracing information (development only)
type DebugEvent struct {
	Timestamp time.Time
	Event     string // "select_int", "measure_float", "skip_whitespace"
	Offset    int    // Byte offset the event refers to
	Context   string // Match length, offending byte, etc.
}

// Lexer is a forward-only scanner over a borrowed source buffer
type Lexer struct {
	src string
	pos int

	// Telemetry (nil when disabled for zero allocation)
	telemetryMode  TelemetryMode
	tokenTelemetry map[TokenKind]*TokenTelemetry

	// Debug (nil when disabled for zero allocation)
	debugLevel  DebugLevel
	debugEvents []DebugEvent
}

// NewLexer creates a new lexer instance with optional configuration
func NewLexer(src string, opts ...LexerOpt) *Lexer {
	config := &LexerConfig{}
	for _, opt := range opts {
		opt(config)
	}

	l := &Lexer{
		telemetryMode: config.telemetry,
		debugLevel:    config.debug,
	}

	if config.telemetry > TelemetryOff {
		l.tokenTelemetry = make(map[TokenKind]*TokenTelemetry)
	}
	if config.debug > DebugOff {
		l.debugEvents = make([]DebugEvent, 0, 256)
	}

	l.Init(src)
	return l
}

// Init resets the lexer over a new buffer, keeping its options
func (l *Lexer) Init(src string) {
	l.src = src
	l.pos = 0

	if l.tokenTelemetry != nil {
		clear(l.tokenTelemetry)
	}
	if l.debugEvents != nil {
		l.debugEvents = l.debugEvents[:0]
	}
}

// Tokenize lexes src to completion
func Tokenize(src string, opts ...LexerOpt) []Lexeme {
	var out []Lexeme
	for lx := range NewLexer(src, opts...).All() {
		out = append(out, lx)
	}
	return out
}

// Offset returns the byte offset of the next unread byte
func (l *Lexer) Offset() int {
	return l.pos
}

// Next returns the next lexeme. It returns false once the buffer is
// exhausted, and keeps returning false afterwards.
func (l *Lexer) Next() (Lexeme, bool) {
	var start time.Time
	if l.telemetryMode >= TelemetryTiming {
		start = time.Now()
	}

	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Lexeme{}, false
	}

	kind, n := l.selectRule()

	prev := l.pos
	l.pos += n
	invariant.Advanced(prev, l.pos, "lexer")
	invariant.SpanWithin(prev, l.pos, len(l.src), "lexer")

	lx := Lexeme{Kind: kind, Span: Span{Start: prev, End: l.pos}, Text: l.src[prev:l.pos]}

	if l.telemetryMode > TelemetryOff {
		var elapsed time.Duration
		if l.telemetryMode >= TelemetryTiming {
			elapsed = time.Since(start)
		}
		l.recordTokenTelemetry(lx, elapsed)
	}

	return lx, true
}

// All ranges over the remaining lexemes
func (l *Lexer) All() iter.Seq[Lexeme] {
	return func(yield func(Lexeme) bool) {
		for {
			lx, ok := l.Next()
			if !ok || !yield(lx) {
				return
			}
		}
	}
}

// selectRule measures every rule at the cursor and returns the winner.
// Falls back to Unknown when nothing matches.
func (l *Lexer) selectRule() (TokenKind, int) {
	best, bestLen := -1, 0
	for i := range rules {
		n := rules[i].match(l.src, l.pos)
		if l.debugLevel >= DebugDetailed {
			l.recordDebugEvent("measure_"+rules[i].name, fmt.Sprintf("%d bytes", n))
		}
		if n > bestLen {
			best, bestLen = i, n
		}
	}

	if unterminatedComment(l.src, l.pos) {
		// The opener is consumed as a unit so the rest of the buffer still lexes
		if l.debugLevel > DebugOff {
			l.recordDebugEvent("unterminated_comment", "/*")
		}
		return Unknown, 2
	}

	if best < 0 {
		_, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if l.debugLevel > DebugOff {
			l.recordDebugEvent("select_unknown", fmt.Sprintf("%q", l.src[l.pos:l.pos+size]))
		}
		return Unknown, size
	}

	if l.debugLevel > DebugOff {
		l.recordDebugEvent("select_"+rules[best].name, fmt.Sprintf("%d bytes", bestLen))
	}
	return rules[best].kind, bestLen
}

// skipWhitespace consumes a run of C whitespace
func (l *Lexer) skipWhitespace() {
	n := run(&isWhitespace, l.src, l.pos)
	if n > 0 && l.debugLevel >= DebugDetailed {
		l.recordDebugEvent("skip_whitespace", fmt.Sprintf("%d bytes", n))
	}
	l.pos += n
}

// GetTokenTelemetry returns per-kind telemetry (production safe)
func (l *Lexer) GetTokenTelemetry() map[TokenKind]*TokenTelemetry {
	if l.telemetryMode == TelemetryOff || l.tokenTelemetry == nil {
		return nil
	}

	// Return a copy to prevent external modification
	result := make(map[TokenKind]*TokenTelemetry, len(l.tokenTelemetry))
	for k, v := range l.tokenTelemetry {
		telemetryCopy := *v
		result[k] = &telemetryCopy
	}
	return result
}

// GetDebugEvents returns debug events (development only)
func (l *Lexer) GetDebugEvents() []DebugEvent {
	if l.debugLevel == DebugOff || l.debugEvents == nil {
		return nil
	}

	result := make([]DebugEvent, len(l.debugEvents))
	copy(result, l.debugEvents)
	return result
}

func (l *Lexer) recordTokenTelemetry(lx Lexeme, elapsed time.Duration) {
	telemetry, exists := l.tokenTelemetry[lx.Kind]
	if !exists {
		telemetry = &TokenTelemetry{Kind: lx.Kind, MinTime: elapsed, MaxTime: elapsed}
		l.tokenTelemetry[lx.Kind] = telemetry
	}

	telemetry.Count++
	telemetry.Bytes += lx.Span.Len()

	if l.telemetryMode >= TelemetryTiming {
		telemetry.TotalTime += elapsed
		telemetry.AvgTime = telemetry.TotalTime / time.Duration(telemetry.Count)
		telemetry.MinTime = min(telemetry.MinTime, elapsed)
		telemetry.MaxTime = max(telemetry.MaxTime, elapsed)
	}
}

func (l *Lexer) recordDebugEvent(event, context string) {
	if l.debugLevel == DebugOff || l.debugEvents == nil {
		return
	}

	l.debugEvents = append(l.debugEvents, DebugEvent{
		Timestamp: time.Now(),
		Event:     event,
		Offset:    l.pos,
		Context:   context,
	})
}
