package envcond

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokWord tokenKind = iota
	tokString
	tokLParen
	tokRParen
	tokEq
	tokNeq
	tokNot
	tokAnd
	tokOr
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(s string) ([]token, error) {
	var toks []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case strings.HasPrefix(s[i:], "=="):
			toks = append(toks, token{tokEq, "=="})
			i += 2
		case strings.HasPrefix(s[i:], "!="):
			toks = append(toks, token{tokNeq, "!="})
			i += 2
		case strings.HasPrefix(s[i:], "&&"):
			toks = append(toks, token{tokAnd, "&&"})
			i += 2
		case strings.HasPrefix(s[i:], "||"):
			toks = append(toks, token{tokOr, "||"})
			i += 2
		case c == '=':
			toks = append(toks, token{tokEq, "="})
			i++
		case c == '!':
			toks = append(toks, token{tokNot, "!"})
			i++
		case c == '"' || c == '\'':
			end := strings.IndexByte(s[i+1:], c)
			if end < 0 {
				return nil, fmt.Errorf("envcond: unterminated string in %q", s)
			}
			toks = append(toks, token{tokString, s[i+1 : i+1+end]})
			i += end + 2
		case isWordByte(c):
			start := i
			for i < len(s) && isWordByte(s[i]) {
				i++
			}
			word := s[start:i]
			switch strings.ToLower(word) {
			case "and":
				toks = append(toks, token{tokAnd, word})
			case "or":
				toks = append(toks, token{tokOr, word})
			case "not":
				toks = append(toks, token{tokNot, word})
			default:
				toks = append(toks, token{tokWord, word})
			}
		default:
			return nil, fmt.Errorf("envcond: unexpected character %q in %q", c, s)
		}
	}
	return toks, nil
}

func isWordByte(c byte) bool {
	return c == '_' || c == '-' || c == '.' || c == '/' || c == ':' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// translate rewrites the tokens as an expr program over the map env. A bare
// name holds when the variable is set; a comparison's right side is always a
// string, quoted or not.
func translate(toks []token) (program string, symbols []string, err error) {
	var sb strings.Builder
	operand := false
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		opensOperand := t.kind == tokWord || t.kind == tokLParen || t.kind == tokNot
		if opensOperand == operand {
			return "", nil, fmt.Errorf("unexpected %q", t.text)
		}
		switch t.kind {
		case tokLParen:
			sb.WriteString("(")
		case tokRParen:
			sb.WriteString(")")
			continue
		case tokNot:
			sb.WriteString("!")
		case tokAnd:
			sb.WriteString(" && ")
			operand = false
			continue
		case tokOr:
			sb.WriteString(" || ")
			operand = false
			continue
		case tokWord:
			operand = true
			switch lower := strings.ToLower(t.text); lower {
			case "true", "false":
				sb.WriteString(lower)
				continue
			}
			symbols = append(symbols, t.text)
			ref := "env[" + strconv.Quote(t.text) + "]"
			if i+1 == len(toks) || (toks[i+1].kind != tokEq && toks[i+1].kind != tokNeq) {
				sb.WriteString("(" + ref + " != nil)")
				continue
			}
			op := "=="
			if toks[i+1].kind == tokNeq {
				op = "!="
			}
			if i+2 == len(toks) || (toks[i+2].kind != tokWord && toks[i+2].kind != tokString) {
				return "", nil, fmt.Errorf("expected value after %q", toks[i+1].text)
			}
			sb.WriteString("(" + ref + " " + op + " " + strconv.Quote(toks[i+2].text) + ")")
			i += 2
			continue
		default:
			return "", nil, fmt.Errorf("unexpected %q", t.text)
		}
	}
	if !operand {
		return "", nil, fmt.Errorf("unexpected end of expression")
	}
	return sb.String(), symbols, nil
}
