package buildlog

import (
	"strings"

	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

var errNotSimpleCommand = zerr.New("line is not a single simple command")

// Split splits a command line into words using shell quoting rules.
// Quotes and escapes are removed; parameter, arithmetic, brace and tilde
// forms are kept verbatim and never expanded.
func Split(line string) ([]string, error) {
	f, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil {
		return nil, err
	}
	if len(f.Stmts) == 0 {
		return nil, nil
	}
	if len(f.Stmts) > 1 {
		return nil, errNotSimpleCommand
	}

	call, ok := f.Stmts[0].Cmd.(*syntax.CallExpr)
	if !ok || len(call.Assigns) > 0 {
		return nil, errNotSimpleCommand
	}

	words := make([]string, 0, len(call.Args))
	for _, w := range call.Args {
		var sb strings.Builder
		for _, part := range w.Parts {
			writePart(&sb, line, part, false)
		}
		words = append(words, sb.String())
	}
	return words, nil
}

func writePart(sb *strings.Builder, line string, part syntax.WordPart, quoted bool) {
	switch p := part.(type) {
	case *syntax.Lit:
		if quoted {
			sb.WriteString(unescapeQuoted(p.Value))
		} else {
			sb.WriteString(unescape(p.Value))
		}
	case *syntax.SglQuoted:
		if p.Dollar {
			sb.WriteString(source(line, p))
			return
		}
		sb.WriteString(p.Value)
	case *syntax.DblQuoted:
		if p.Dollar {
			sb.WriteString(source(line, p))
			return
		}
		for _, inner := range p.Parts {
			writePart(sb, line, inner, true)
		}
	default:
		sb.WriteString(source(line, p))
	}
}

// source returns the original text of a node.
func source(line string, n syntax.Node) string {
	return line[n.Pos().Offset():n.End().Offset()]
}

// unescape drops the backslash in front of any character outside quotes.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// unescapeQuoted drops the backslash only where double quotes give it meaning.
func unescapeQuoted(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && strings.IndexByte("$`\"\\", s[i+1]) >= 0 {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
