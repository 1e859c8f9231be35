// Copyright The CheckFrame Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/checkframe/go-checkframe/pkg/frame"
)

// SyntaxError reports a problem encountered whilst parsing a condition,
// along with the character index at which it arose.
type SyntaxError struct {
	// Message describing the problem.
	Message string
	// Index of the offending character in the input.
	Index int
}

// Error implementation for the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%s (at offset %d)", p.Message, p.Index)
}

// Parse parses a condition written in the infix notation accepted by the
// command-line tool, for example:
//
//	price > 0 and status in ('A', 'B')
//	name is not null or len_chars(name) between 1 and 64
//
// The grammar is deliberately small: comparisons (==, !=, <, <=, >, >=),
// membership ("in"), null tests ("is null", "is not null"), closed ranges
// ("between X and Y") and the connectives "and", "or", "not" with the usual
// precedence.  Parentheses group conditions.
func Parse(input string) (Expr, error) {
	p := &parser{lex(input), 0}
	//
	e, err := p.parseDisjunct()
	if err != nil {
		return nil, err
	}
	// Check everything was consumed.
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, &SyntaxError{fmt.Sprintf("unexpected %q", tok.text), tok.index}
	}
	//
	return e, nil
}

// ============================================================================
// Lexer
// ============================================================================

const (
	tokEOF = iota
	tokIdent
	tokNumber
	tokString
	tokOperator
	tokLeftParen
	tokRightParen
	tokComma
	tokError
)

// token associates a piece of information with a given range of characters
// in the string being scanned.
type token struct {
	kind  int
	text  string
	index int
}

// lex tokenises the entire input eagerly, terminating with either an EOF or
// error token.
func lex(input string) []token {
	var (
		tokens []token
		i      = 0
		runes  = []rune(input)
	)
	//
	for i < len(runes) {
		c := runes[i]
		//
		switch {
		case unicode.IsSpace(c):
			i++
			continue
		case c == '(':
			tokens = append(tokens, token{tokLeftParen, "(", i})
			i++
		case c == ')':
			tokens = append(tokens, token{tokRightParen, ")", i})
			i++
		case c == ',':
			tokens = append(tokens, token{tokComma, ",", i})
			i++
		case c == '\'' || c == '"':
			tok, n := lexString(runes, i)
			tokens = append(tokens, tok)
			i = n
		case unicode.IsDigit(c), c == '-' && i+1 < len(runes) && unicode.IsDigit(runes[i+1]):
			tok, n := lexNumber(runes, i)
			tokens = append(tokens, tok)
			i = n
		case unicode.IsLetter(c) || c == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			//
			tokens = append(tokens, token{tokIdent, string(runes[start:i]), start})
		case strings.ContainsRune("=!<>", c):
			tok, n := lexOperator(runes, i)
			tokens = append(tokens, tok)
			i = n
		default:
			tokens = append(tokens, token{tokError, string(c), i})
			i = len(runes)
		}
		// Stop on error tokens.
		if tokens[len(tokens)-1].kind == tokError {
			break
		}
	}
	//
	return append(tokens, token{tokEOF, "", len(runes)})
}

// lexString scans a quoted string literal, which must be terminated by the
// same quote character that opened it.
func lexString(runes []rune, start int) (token, int) {
	quote := runes[start]
	//
	for i := start + 1; i < len(runes); i++ {
		if runes[i] == quote {
			return token{tokString, string(runes[start+1 : i]), start}, i + 1
		}
	}
	//
	return token{tokError, "unterminated string", start}, len(runes)
}

// lexNumber scans an (optionally signed, optionally fractional) numeric
// literal.
func lexNumber(runes []rune, start int) (token, int) {
	i := start
	//
	if runes[i] == '-' {
		i++
	}
	//
	for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
		i++
	}
	//
	return token{tokNumber, string(runes[start:i]), start}, i
}

// lexOperator scans a comparison operator, preferring the longest match.
func lexOperator(runes []rune, start int) (token, int) {
	rest := string(runes[start:min(start+2, len(runes))])
	//
	for _, op := range []string{"==", "!=", "<>", "<=", ">="} {
		if rest == op {
			return token{tokOperator, op, start}, start + 2
		}
	}
	//
	switch runes[start] {
	case '=', '<', '>':
		return token{tokOperator, string(runes[start]), start}, start + 1
	}
	//
	return token{tokError, string(runes[start]), start}, len(runes)
}

// ============================================================================
// Parser
// ============================================================================

// parser is a recursive-descent parser over the token stream.
type parser struct {
	tokens []token
	index  int
}

func (p *parser) peek() token {
	return p.tokens[p.index]
}

func (p *parser) next() token {
	tok := p.tokens[p.index]
	//
	if tok.kind != tokEOF {
		p.index++
	}
	//
	return tok
}

// matchKeyword consumes the next token if it is the given (case-insensitive)
// keyword.
func (p *parser) matchKeyword(word string) bool {
	tok := p.peek()
	//
	if tok.kind == tokIdent && strings.EqualFold(tok.text, word) {
		p.next()
		return true
	}
	//
	return false
}

func (p *parser) expectKeyword(word string) error {
	if !p.matchKeyword(word) {
		tok := p.peek()
		return &SyntaxError{fmt.Sprintf("expected %q, found %q", word, tok.text), tok.index}
	}
	//
	return nil
}

func (p *parser) expect(kind int, what string) (token, error) {
	tok := p.next()
	//
	if tok.kind != kind {
		return tok, &SyntaxError{fmt.Sprintf("expected %s, found %q", what, tok.text), tok.index}
	}
	//
	return tok, nil
}

// parseDisjunct parses one or more conjuncts separated by "or".
func (p *parser) parseDisjunct() (Expr, error) {
	lhs, err := p.parseConjunct()
	if err != nil {
		return nil, err
	}
	//
	terms := []Expr{lhs}
	//
	for p.matchKeyword("or") {
		rhs, err := p.parseConjunct()
		if err != nil {
			return nil, err
		}
		//
		terms = append(terms, rhs)
	}
	//
	if len(terms) == 1 {
		return lhs, nil
	}
	//
	return Disjunction(terms...), nil
}

// parseConjunct parses one or more unary conditions separated by "and".
func (p *parser) parseConjunct() (Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	//
	terms := []Expr{lhs}
	//
	for p.matchKeyword("and") {
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		//
		terms = append(terms, rhs)
	}
	//
	if len(terms) == 1 {
		return lhs, nil
	}
	//
	return Conjunction(terms...), nil
}

// parseUnary parses an optionally negated or parenthesised relation.
func (p *parser) parseUnary() (Expr, error) {
	if p.matchKeyword("not") {
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		//
		return Negate(arg), nil
	}
	//
	if p.peek().kind == tokLeftParen {
		p.next()
		//
		e, err := p.parseDisjunct()
		if err != nil {
			return nil, err
		}
		//
		if _, err := p.expect(tokRightParen, "')'"); err != nil {
			return nil, err
		}
		//
		return e, nil
	}
	//
	return p.parseRelation()
}

// parseRelation parses a single comparison, membership test, null test or
// range test over operands.
func (p *parser) parseRelation() (Expr, error) {
	lhs, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	//
	switch {
	case p.matchKeyword("in"):
		return p.parseMembership(lhs)
	case p.matchKeyword("is"):
		negated := p.matchKeyword("not")
		//
		if err := p.expectKeyword("null"); err != nil {
			return nil, err
		}
		//
		if negated {
			return IsNotNull(lhs), nil
		}
		//
		return IsNull(lhs), nil
	case p.matchKeyword("between"):
		return p.parseRange(lhs)
	}
	//
	tok, err := p.expect(tokOperator, "comparison operator")
	if err != nil {
		return nil, err
	}
	//
	rhs, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	//
	switch tok.text {
	case "==", "=":
		return Equals(lhs, rhs), nil
	case "!=", "<>":
		return NotEquals(lhs, rhs), nil
	case "<":
		return LessThan(lhs, rhs), nil
	case "<=":
		return LessThanOrEquals(lhs, rhs), nil
	case ">":
		return GreaterThan(lhs, rhs), nil
	case ">=":
		return GreaterThanOrEquals(lhs, rhs), nil
	}
	// unreachable
	return nil, &SyntaxError{fmt.Sprintf("unknown operator %q", tok.text), tok.index}
}

// parseMembership parses the parenthesised literal list of an "in" test.
func (p *parser) parseMembership(lhs Expr) (Expr, error) {
	var elements []frame.Value
	//
	if _, err := p.expect(tokLeftParen, "'('"); err != nil {
		return nil, err
	}
	//
	for {
		v, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, v)
		//
		if p.peek().kind != tokComma {
			break
		}
		//
		p.next()
	}
	//
	if _, err := p.expect(tokRightParen, "')'"); err != nil {
		return nil, err
	}
	//
	return In(lhs, elements...), nil
}

// parseRange parses the "X and Y" tail of a between test.  The "and" here
// binds to the range, not to the surrounding conjunction.
func (p *parser) parseRange(lhs Expr) (Expr, error) {
	lo, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	//
	if err := p.expectKeyword("and"); err != nil {
		return nil, err
	}
	//
	hi, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	//
	return Between(lhs, lo, hi), nil
}

// parseOperand parses a column reference, literal or len_chars application.
func (p *parser) parseOperand() (Expr, error) {
	tok := p.peek()
	//
	switch tok.kind {
	case tokNumber, tokString:
		v, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		//
		return Const(v), nil
	case tokIdent:
		switch {
		case strings.EqualFold(tok.text, "true"), strings.EqualFold(tok.text, "false"),
			strings.EqualFold(tok.text, "null"):
			v, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			//
			return Const(v), nil
		case strings.EqualFold(tok.text, "len_chars"):
			p.next()
			//
			if _, err := p.expect(tokLeftParen, "'('"); err != nil {
				return nil, err
			}
			//
			arg, err := p.parseOperand()
			if err != nil {
				return nil, err
			}
			//
			if _, err := p.expect(tokRightParen, "')'"); err != nil {
				return nil, err
			}
			//
			return LenChars(arg), nil
		}
		//
		p.next()
		//
		return Col(tok.text), nil
	}
	//
	return nil, &SyntaxError{fmt.Sprintf("expected operand, found %q", tok.text), tok.index}
}

// parseLiteral parses a numeric, string, boolean or null literal into a
// frame value.
func (p *parser) parseLiteral() (frame.Value, error) {
	tok := p.next()
	//
	switch tok.kind {
	case tokNumber:
		if !strings.Contains(tok.text, ".") {
			i, err := strconv.ParseInt(tok.text, 10, 64)
			if err == nil {
				return frame.Int(i), nil
			}
		}
		//
		f, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return frame.Null(), &SyntaxError{fmt.Sprintf("malformed number %q", tok.text), tok.index}
		}
		//
		return frame.Float(f), nil
	case tokString:
		return frame.Str(tok.text), nil
	case tokIdent:
		switch {
		case strings.EqualFold(tok.text, "true"):
			return frame.Bool(true), nil
		case strings.EqualFold(tok.text, "false"):
			return frame.Bool(false), nil
		case strings.EqualFold(tok.text, "null"):
			return frame.Null(), nil
		}
	}
	//
	return frame.Null(), &SyntaxError{fmt.Sprintf("expected literal, found %q", tok.text), tok.index}
}
