package godual

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// JSON expression codec
// ============================================================

// CompileJSON builds a Func from a JSON expression object, so functions
// can cross a process boundary (tool calls, CLI flags) and still be
// differentiated. Node types:
//
//	{"type":"num","value":1.5}
//	{"type":"var"}                                  the free variable
//	{"type":"add","terms":[...]}
//	{"type":"mul","factors":[...]}
//	{"type":"sub","a":{...},"b":{...}}
//	{"type":"div","a":{...},"b":{...}}
//	{"type":"neg","arg":{...}}
//	{"type":"pow","base":{...},"exp":{...}}
func CompileJSON(data map[string]interface{}) (Func, error) {
	if data == nil {
		return nil, fmt.Errorf("expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	subExpr := func(field string) (Func, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an object", typ, field)
		}
		f, err := CompileJSON(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", typ, field, err)
		}
		return f, nil
	}

	subExprArray := func(field string) ([]Func, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an array", typ, field)
		}
		out := make([]Func, len(raw))
		for i, it := range raw {
			m, ok := it.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%s: %q[%d] must be an object", typ, field, i)
			}
			f, err := CompileJSON(m)
			if err != nil {
				return nil, fmt.Errorf("%s: %q[%d]: %w", typ, field, i, err)
			}
			out[i] = f
		}
		return out, nil
	}

	switch typ {
	case "num":
		v, ok := data["value"]
		if !ok {
			return nil, fmt.Errorf("num: missing 'value'")
		}
		c, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("num: 'value' must be a number")
		}
		return func(Number) Number { return C(c) }, nil

	case "var":
		return func(x Number) Number { return x }, nil

	case "add":
		fs, err := subExprArray("terms")
		if err != nil {
			return nil, err
		}
		return func(x Number) Number {
			terms := make([]Number, len(fs))
			for i, f := range fs {
				terms[i] = f(x)
			}
			return AddOf(terms...)
		}, nil

	case "mul":
		fs, err := subExprArray("factors")
		if err != nil {
			return nil, err
		}
		return func(x Number) Number {
			factors := make([]Number, len(fs))
			for i, f := range fs {
				factors[i] = f(x)
			}
			return MulOf(factors...)
		}, nil

	case "sub":
		a, err := subExpr("a")
		if err != nil {
			return nil, err
		}
		b, err := subExpr("b")
		if err != nil {
			return nil, err
		}
		return func(x Number) Number { return SubOf(a(x), b(x)) }, nil

	case "div":
		a, err := subExpr("a")
		if err != nil {
			return nil, err
		}
		b, err := subExpr("b")
		if err != nil {
			return nil, err
		}
		return func(x Number) Number { return DivOf(a(x), b(x)) }, nil

	case "neg":
		arg, err := subExpr("arg")
		if err != nil {
			return nil, err
		}
		return func(x Number) Number { return NegOf(arg(x)) }, nil

	case "pow":
		base, err := subExpr("base")
		if err != nil {
			return nil, err
		}
		exp, err := subExpr("exp")
		if err != nil {
			return nil, err
		}
		return func(x Number) Number { return PowOf(base(x), exp(x)) }, nil
	}
	return nil, fmt.Errorf("unknown expression type: %s", typ)
}

// CompileJSONBytes decodes raw JSON and compiles it.
func CompileJSONBytes(raw []byte) (Func, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("invalid expression JSON: %w", err)
	}
	return CompileJSON(m)
}
