package main

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zeebo/errs"

	"github.com/calebcase/bitnum"
)

// Error is the class of command line usage errors.
var Error = errs.Class("usage")

// MaxShift bounds the left shift count accepted by calc. Left shifts allocate
// one byte per result bit.
const MaxShift = 1 << 24

// parseOperand reads a 0b-prefixed bit string or a decimal number.
func parseOperand(s string) (bitnum.Number, error) {
	if strings.HasPrefix(s, "0b") {
		return bitnum.Parse(s[2:])
	}

	return bitnum.ParseDecimal(s)
}

// evaluate applies op to a and the right hand side rhs. Shift operators take
// rhs as a decimal bit count, every other operator as an operand.
func evaluate(a bitnum.Number, op, rhs string) (result bitnum.Number, err error) {
	defer func() {
		if err == nil {
			log.WithFields(logrus.Fields{
				"op":     op,
				"width":  a.BitWidth(),
				"result": result.BitWidth(),
			}).Debug("Evaluated")
		}
	}()

	switch op {
	case "<<", ">>":
		s, err := strconv.ParseUint(rhs, 10, 0)
		if err != nil {
			return bitnum.Number{}, Error.New("invalid shift %q", rhs)
		}

		if op == "<<" {
			if s > MaxShift {
				return bitnum.Number{}, Error.New("shift too large: %d > %d", s, MaxShift)
			}

			return a.Lsh(uint(s)), nil
		}

		return a.Rsh(uint(s)), nil
	}

	b, err := parseOperand(rhs)
	if err != nil {
		return bitnum.Number{}, err
	}

	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/":
		return a.Div(b)
	case "%":
		return a.Mod(b)
	case "&":
		return a.And(b), nil
	case "|":
		return a.Or(b), nil
	}

	return bitnum.Number{}, Error.New("unknown operator %q", op)
}

// relation returns the symbol for a Cmp result.
func relation(cmp int) string {
	switch {
	case cmp < 0:
		return "<"
	case cmp > 0:
		return ">"
	}

	return "=="
}
