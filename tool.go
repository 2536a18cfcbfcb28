package godual

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HandleToolCall dispatches one tool request. Every outcome is a
// ToolResponse; bad input lands in Error, never in a panic.
func HandleToolCall(req ToolRequest) ToolResponse {
	getFunc := func(key string) (Func, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be an expression object", key)
		}
		return CompileJSON(m)
	}
	getScalar := func(key string) (Scalar, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		switch t := v.(type) {
		case float64:
			return Real(t), nil
		case []interface{}:
			xs := make([]float64, len(t))
			for i, e := range t {
				f, ok := e.(float64)
				if !ok {
					return nil, fmt.Errorf("param %s[%d] must be a number", key, i)
				}
				xs[i] = f
			}
			return Vector(xs), nil
		}
		return nil, fmt.Errorf("param %s must be a number or number array", key)
	}
	optFloat := func(key string, def float64) (float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return def, nil
		}
		f, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("param %s must be a number", key)
		}
		return f, nil
	}

	fail := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

	switch req.Tool {
	case "value":
		v, ok := req.Params["x"]
		if !ok {
			return fail(fmt.Errorf("missing param: x"))
		}
		if x, err := getScalar("x"); err == nil {
			return ToolResponse{Result: scalarJSON(x)}
		}
		s, err := ValueOf(v)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: scalarJSON(s)}

	case "evaluate":
		f, err := getFunc("expr")
		if err != nil {
			return fail(err)
		}
		x, err := getScalar("x")
		if err != nil {
			return fail(err)
		}
		n := f(VarOf(x))
		return ToolResponse{Result: map[string]interface{}{
			"value":      scalarJSON(n.Value()),
			"derivative": scalarJSON(n.Deriv()),
		}}

	case "derivative":
		f, err := getFunc("expr")
		if err != nil {
			return fail(err)
		}
		x, err := getScalar("x")
		if err != nil {
			return fail(err)
		}
		order, err := optFloat("n", 1)
		if err != nil {
			return fail(err)
		}
		g := DerivativeN(f, int(order))
		return ToolResponse{Result: scalarJSON(g(x))}

	case "newton":
		f, err := getFunc("expr")
		if err != nil {
			return fail(err)
		}
		x0, err := getScalar("x0")
		if err != nil {
			return fail(err)
		}
		atol, err := optFloat("atol", 1e-8)
		if err != nil {
			return fail(err)
		}
		maxIter, err := optFloat("maxiter", 200)
		if err != nil {
			return fail(err)
		}
		res := Newton(f, x0, atol, int(maxIter))
		return ToolResponse{Result: map[string]interface{}{
			"message": res.Message,
			"success": res.Success,
			"nit":     res.NIt,
			"nfev":    res.NFev,
			"x":       scalarJSON(res.X),
		}}

	case "tool_spec":
		return ToolResponse{Result: json.RawMessage(ToolSpec())}
	}
	return fail(fmt.Errorf("unknown tool: %s", req.Tool))
}

// scalarJSON flattens a Scalar for JSON encoding.
func scalarJSON(s Scalar) interface{} {
	switch v := s.(type) {
	case Real:
		return float64(v)
	case Vector:
		return []float64(v)
	}
	return s.String()
}

// ToolSpec returns the tool schema for agent registration.
func ToolSpec() string {
	tools := []map[string]interface{}{
		ts("value", "Numeric payload of x (number or number array)", []string{"x"}, map[string]string{"x": "number"}),
		ts("evaluate", "Evaluate expr at x: value and first derivative", []string{"expr", "x"}, map[string]string{"expr": "object", "x": "number"}),
		ts("derivative", "Derivative of expr at x. Optional n (collapses to first order)", []string{"expr", "x"}, map[string]string{"expr": "object", "x": "number", "n": "integer"}),
		ts("newton", "Newton-Raphson root of expr from x0. Optional atol, maxiter", []string{"expr", "x0"}, map[string]string{"expr": "object", "x0": "number", "atol": "number", "maxiter": "integer"}),
		ts("tool_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
