package expr

import "strings"

// Eval walks the AST against ctx and returns the resulting tagged value.
// Division by zero returns the dividend unchanged (spec §4.2); unknown
// identifiers evaluate to their own normalized string (a deliberate DSL
// affordance so bare `"hearts"` works in comparisons without quoting).
func Eval(n Node, ctx Context) (Value, error) {
	switch node := n.(type) {
	case LiteralBool:
		return Bool(node.Value), nil
	case LiteralNumber:
		return Number(node.Value), nil
	case LiteralString:
		return String(node.Value), nil

	case Ident:
		if v, ok := ctx.Identifier(node.Name); ok {
			return v, nil
		}
		return String(NormalizeString(node.Name)), nil

	case Call:
		args := make([]Value, len(node.Args))
		for i, a := range node.Args {
			v, err := Eval(a, ctx)
			if err != nil {
				return None, err
			}
			args[i] = v
		}
		lower := strings.ToLower(node.Name)
		v, ok, err := ctx.Call(lower, args)
		if err != nil {
			return None, err
		}
		if !ok {
			return None, nil
		}
		return v, nil

	case Unary:
		v, err := Eval(node.Operand, ctx)
		if err != nil {
			return None, err
		}
		switch node.Op {
		case OpNot:
			return Bool(!v.Truthy()), nil
		case OpNegate:
			return Number(-v.AsNumber()), nil
		}
		return None, nil

	case Binary:
		return evalBinary(node, ctx)

	default:
		return None, nil
	}
}

func evalBinary(node Binary, ctx Context) (Value, error) {
	switch node.Op {
	case OpOr:
		l, err := Eval(node.Left, ctx)
		if err != nil {
			return None, err
		}
		if l.Truthy() {
			return Bool(true), nil
		}
		r, err := Eval(node.Right, ctx)
		if err != nil {
			return None, err
		}
		return Bool(r.Truthy()), nil

	case OpAnd:
		l, err := Eval(node.Left, ctx)
		if err != nil {
			return None, err
		}
		if !l.Truthy() {
			return Bool(false), nil
		}
		r, err := Eval(node.Right, ctx)
		if err != nil {
			return None, err
		}
		return Bool(r.Truthy()), nil
	}

	l, err := Eval(node.Left, ctx)
	if err != nil {
		return None, err
	}
	r, err := Eval(node.Right, ctx)
	if err != nil {
		return None, err
	}

	switch node.Op {
	case OpEq:
		return Bool(valuesEqual(l, r)), nil
	case OpNeq:
		return Bool(!valuesEqual(l, r)), nil
	case OpLt:
		return Bool(l.AsNumber() < r.AsNumber()), nil
	case OpLte:
		return Bool(l.AsNumber() <= r.AsNumber()), nil
	case OpGt:
		return Bool(l.AsNumber() > r.AsNumber()), nil
	case OpGte:
		return Bool(l.AsNumber() >= r.AsNumber()), nil
	case OpAdd:
		if l.Kind == KindString || r.Kind == KindString {
			return String(l.AsString() + r.AsString()), nil
		}
		return Number(l.AsNumber() + r.AsNumber()), nil
	case OpSub:
		return Number(l.AsNumber() - r.AsNumber()), nil
	case OpMul:
		return Number(l.AsNumber() * r.AsNumber()), nil
	case OpDiv:
		rv := r.AsNumber()
		if rv == 0 {
			return l, nil
		}
		return Number(l.AsNumber() / rv), nil
	default:
		return None, nil
	}
}

// valuesEqual implements spec's string-equality rule: case-insensitive
// after normalization. Non-string comparisons fall back to AsString() too,
// so `hand == "pair"` and `4 == "4"` both behave predictably. Smeared-suit
// grouping (hearts==diamonds, spades==clubs) is layered on by the caller's
// Context (it can special-case the Identifier resolution or post-process),
// not hardcoded here, since it is conditional on a rule flag the kernel
// itself does not own.
func valuesEqual(l, r Value) bool {
	if l.Kind == KindNumber && r.Kind == KindNumber {
		return l.Num == r.Num
	}
	if l.Kind == KindBool && r.Kind == KindBool {
		return l.Bool == r.Bool
	}
	return l.AsString() == r.AsString()
}
