// cmd/godual/main.go — CLI front end for the godual library.
//
// Expressions are passed as JSON objects in the codec's wire form, e.g.
// 3 + x - x^3:
//
//	godual newton --x0 3 --expr '{"type":"add","terms":[
//	  {"type":"num","value":3},
//	  {"type":"var"},
//	  {"type":"neg","arg":{"type":"pow",
//	    "base":{"type":"var"},"exp":{"type":"num","value":3}}}]}'
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/njchilds90/godual"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Format string // "json" | "text"
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "godual",
		Short:         "Forward-mode automatic differentiation toolbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != "text" && opts.Format != "json" {
				return fmt.Errorf("invalid format %q: must be text or json", opts.Format)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(newEvalCommand(opts))
	cmd.AddCommand(newDerivCommand(opts))
	cmd.AddCommand(newNewtonCommand(opts))

	return cmd
}

func newEvalCommand(opts *rootOptions) *cobra.Command {
	var expr string
	var at float64

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate an expression and its derivative at a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := godual.CompileJSONBytes([]byte(expr))
			if err != nil {
				return err
			}
			n := f(godual.V(at))
			return emit(cmd, opts, map[string]interface{}{
				"value":      n.Value().String(),
				"derivative": n.Deriv().String(),
			})
		},
	}

	cmd.Flags().StringVar(&expr, "expr", "", "expression JSON (required)")
	cmd.Flags().Float64Var(&at, "at", 0, "evaluation point")
	_ = cmd.MarkFlagRequired("expr")

	return cmd
}

func newDerivCommand(opts *rootOptions) *cobra.Command {
	var expr string
	var at float64
	var order int

	cmd := &cobra.Command{
		Use:   "deriv",
		Short: "Derivative of an expression at a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := godual.CompileJSONBytes([]byte(expr))
			if err != nil {
				return err
			}
			g := godual.DerivativeN(f, order)
			return emit(cmd, opts, map[string]interface{}{
				"derivative": g(godual.R(at)).String(),
			})
		},
	}

	cmd.Flags().StringVar(&expr, "expr", "", "expression JSON (required)")
	cmd.Flags().Float64Var(&at, "at", 0, "evaluation point")
	cmd.Flags().IntVar(&order, "n", 1, "derivative order (collapses to first order)")
	_ = cmd.MarkFlagRequired("expr")

	return cmd
}

func newNewtonCommand(opts *rootOptions) *cobra.Command {
	var expr string
	var x0, atol float64
	var maxIter int

	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Find a root with Newton-Raphson and an auto-derived f'",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := godual.CompileJSONBytes([]byte(expr))
			if err != nil {
				return err
			}
			res := godual.Newton(f, godual.R(x0), atol, maxIter)
			if opts.Format == "json" {
				if err := emit(cmd, opts, map[string]interface{}{
					"message": res.Message,
					"success": res.Success,
					"nit":     res.NIt,
					"nfev":    res.NFev,
					"x":       res.X.String(),
				}); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), res)
			}
			if !res.Ok() {
				return fmt.Errorf("newton: %s", res.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&expr, "expr", "", "expression JSON (required)")
	cmd.Flags().Float64Var(&x0, "x0", 0, "starting point")
	cmd.Flags().Float64Var(&atol, "atol", 1e-8, "absolute tolerance on |f(x)|")
	cmd.Flags().IntVar(&maxIter, "maxiter", 200, "iteration limit")
	_ = cmd.MarkFlagRequired("expr")

	return cmd
}

func emit(cmd *cobra.Command, opts *rootOptions, fields map[string]interface{}) error {
	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(fields)
	}
	for _, k := range sortedKeys(fields) {
		fmt.Fprintf(out, "%s: %v\n", k, fields[k])
	}
	return nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
