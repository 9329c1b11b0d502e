package drills

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shelldrill/shelldrill/core/sandbox"
)

// exprParser is a small recursive descent evaluator for the integer
// arithmetic the shell's $((...)) supports: + - * / % and parentheses.
type exprParser struct {
	input []rune
	pos   int
}

func (e *exprParser) skipSpace() {
	for e.pos < len(e.input) && unicode.IsSpace(e.input[e.pos]) {
		e.pos++
	}
}

func (e *exprParser) peek() rune {
	e.skipSpace()
	if e.pos >= len(e.input) {
		return 0
	}
	return e.input[e.pos]
}

func (e *exprParser) expr() (int64, error) {
	left, err := e.term()
	if err != nil {
		return 0, err
	}
	for {
		switch e.peek() {
		case '+':
			e.pos++
			right, err := e.term()
			if err != nil {
				return 0, err
			}
			left += right
		case '-':
			e.pos++
			right, err := e.term()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (e *exprParser) term() (int64, error) {
	left, err := e.unary()
	if err != nil {
		return 0, err
	}
	for {
		op := e.peek()
		switch op {
		case '*', '/', '%':
			e.pos++
			right, err := e.unary()
			if err != nil {
				return 0, err
			}
			if right == 0 && op != '*' {
				return 0, fmt.Errorf("division by zero")
			}
			switch op {
			case '*':
				left *= right
			case '/':
				left /= right
			case '%':
				left %= right
			}
		default:
			return left, nil
		}
	}
}

func (e *exprParser) unary() (int64, error) {
	if e.peek() == '-' {
		e.pos++
		v, err := e.unary()
		return -v, err
	}
	return e.primary()
}

func (e *exprParser) primary() (int64, error) {
	switch c := e.peek(); {
	case c == '(':
		e.pos++
		v, err := e.expr()
		if err != nil {
			return 0, err
		}
		if e.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis at position %d", e.pos+1)
		}
		e.pos++
		return v, nil

	case unicode.IsDigit(c):
		start := e.pos
		for e.pos < len(e.input) && unicode.IsDigit(e.input[e.pos]) {
			e.pos++
		}
		return strconv.ParseInt(string(e.input[start:e.pos]), 10, 64)

	case c == 0:
		return 0, fmt.Errorf("unexpected end of expression")

	default:
		return 0, fmt.Errorf("unexpected character %q at position %d", c, e.pos+1)
	}
}

// EvalExpr evaluates an integer arithmetic expression.
func EvalExpr(input string) (int64, error) {
	p := &exprParser{input: []rune(input)}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.peek() != 0 {
		return 0, fmt.Errorf("unexpected character %q at position %d", p.peek(), p.pos+1)
	}
	return v, nil
}

// Calc evaluates integer expressions like the shell's $((...)).
func Calc(p sandbox.Proc) int {
	cmd := &SimpleCommand{
		Use:   "calc EXPRESSION",
		Short: "Evaluate an integer arithmetic expression.",
	}

	return cmd.RunE(p, func() error {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			return fmt.Errorf("expected an expression")
		}

		// Join so `calc 1 + 2` and `calc '1 + 2'` both work.
		result, err := EvalExpr(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(p.Stdout(), result)
		return nil
	})
}

var _ sandbox.ProcessFunc = Calc

func init() {
	mustRegister(Drill{
		Name:  "calc",
		Topic: "arithmetic",
		Short: "Integer arithmetic like $((...)).",
		Day:   5,
		Proc:  Calc,
	})
}
