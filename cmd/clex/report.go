package main

import (
	"fmt"
	"strconv"

	"github.com/opal-lang/clex/runtime/lexer"
)

// report lexes src and renders the per-file report:
//
//	@@ path                                   (--print-files)
//	  -- Int [8..14) "0x1fUL"                 (--print-tokens)
//	    >> int: 31                            (--print-extracted)
//	    !! char: [4..8) "'ab'" (path)         (stderr, decode failures)
//	  ?? [3..4) "@" (path:1:4)                (stderr, unknown input)
func (a *app) report(path, src string) *fileReport {
	r := &fileReport{}
	if a.cfg.PrintFiles {
		_, _ = fmt.Fprintf(&r.out, "%s %s\n", Colorize("@@", ColorGray, a.useColor), path)
	}

	var opts []lexer.LexerOpt
	if a.cfg.Debug {
		opts = append(opts, lexer.WithTelemetryBasic(), lexer.WithDebugPaths())
	}
	if a.cfg.Trace {
		opts = append(opts, lexer.WithDebugDetailed())
	}

	var index *lexer.LineIndex
	l := lexer.NewLexer(src, opts...)
	for lx := range l.All() {
		r.lexemes++

		if lx.Kind == lexer.Unknown {
			if index == nil {
				index = lexer.NewLineIndex(src)
			}
			pos := index.Position(lx.Span.Start)
			_, _ = fmt.Fprintf(&r.err, "  %s %s %s (%s:%d:%d)\n",
				Colorize("??", ColorRed, a.useColor), spanString(lx.Span), strconv.Quote(lx.Text),
				path, pos.Line, pos.Column)
			r.unknown++
			continue
		}

		if a.cfg.PrintTokens && (a.only == nil || a.only[lx.Kind]) {
			_, _ = fmt.Fprintf(&r.out, "  -- %s %s %s\n",
				Colorize(lx.Kind.String(), ColorCyan, a.useColor), spanString(lx.Span), strconv.Quote(lx.Text))
		}

		name, value, ok, wanted := a.extract(lx)
		if !wanted {
			continue
		}
		if !ok {
			_, _ = fmt.Fprintf(&r.err, "    %s %s: %s %s (%s)\n",
				Colorize("!!", ColorYellow, a.useColor), name, spanString(lx.Span), strconv.Quote(lx.Text), path)
			r.failed++
			continue
		}
		if a.cfg.PrintExtracted {
			_, _ = fmt.Fprintf(&r.out, "    %s %s: %s\n", Colorize(">>", ColorGreen, a.useColor), name, value)
		}
	}

	if a.cfg.Debug {
		for kind, tel := range l.GetTokenTelemetry() {
			a.log.Debug().Str("path", path).Str("kind", kind.String()).
				Int("count", tel.Count).Int("bytes", tel.Bytes).Msg("telemetry")
		}
		for _, ev := range l.GetDebugEvents() {
			a.log.Debug().Str("path", path).Str("event", ev.Event).
				Int("offset", ev.Offset).Str("context", ev.Context).Msg("lexer trace")
		}
	}
	return r
}

// extract decodes lx when its kind was requested. wanted is false when the
// kind carries no value or its extraction is off; identifiers that are not
// keywords are not extraction failures.
func (a *app) extract(lx lexer.Lexeme) (name, value string, ok, wanted bool) {
	switch lx.Kind {
	case lexer.Identifier:
		if !a.cfg.ExtractKeywords {
			return
		}
		kw, isKw := lx.Keyword()
		if !isKw {
			return
		}
		return "keyword", kw.String(), true, true

	case lexer.Comment:
		if !a.cfg.ExtractComments {
			return
		}
		text, ok := lx.CommentText()
		return "comment", strconv.Quote(text), ok, true

	case lexer.CharLiteral:
		if !a.cfg.ExtractChars {
			return
		}
		c, ok := lx.CharValue()
		return "char", strconv.QuoteRune(c), ok, true

	case lexer.StringLiteral:
		if !a.cfg.ExtractStrings {
			return
		}
		s, ok := lx.StringValue()
		return "string", strconv.Quote(s), ok, true

	case lexer.IntLiteral:
		if !a.cfg.ExtractInts {
			return
		}
		v, ok := lx.WideIntValue(128, true)
		if !ok {
			return "int", "", false, true
		}
		return "int", v.String(), true, true

	case lexer.FloatLiteral:
		if !a.cfg.ExtractFloats {
			return
		}
		f, ok := lexer.FloatValue[float64](lx)
		return "float", strconv.FormatFloat(f, 'g', -1, 64), ok, true
	}
	return
}

func spanString(s lexer.Span) string {
	return fmt.Sprintf("[%d..%d)", s.Start, s.End)
}
