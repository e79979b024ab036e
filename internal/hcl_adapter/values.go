package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/nnc/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the source.
// The decoder fills omitted optional attributes with zero-width placeholder
// expressions, so a nil check alone does not tell them apart.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Expression is nil, considering it undefined.", "attribute", attrName)
		return false
	}

	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// evaluate returns the value of a literal expression. Descriptors have no
// variables or functions, so evaluation uses no context.
func evaluate(expr hcl.Expression) (cty.Value, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	return val, nil
}

// decodeNames reads an attribute that holds either one blob name or a list
// of them.
func decodeNames(ctx context.Context, expr hcl.Expression, attrName string) ([]string, error) {
	if !isExprDefined(ctx, expr, attrName) {
		return nil, nil
	}
	val, err := evaluate(expr)
	if err != nil {
		return nil, err
	}
	if val.IsNull() {
		return nil, nil
	}
	if val.Type() == cty.String {
		return []string{val.AsString()}, nil
	}

	list, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("%s must be a string or a list of strings: %w", attrName, err)
	}
	var names []string
	if err := gocty.FromCtyValue(list, &names); err != nil {
		return nil, fmt.Errorf("%s: %w", attrName, err)
	}
	return names, nil
}

// decodeShape reads a list of non-negative whole numbers.
func decodeShape(expr hcl.Expression, attrName string) ([]int, error) {
	val, err := evaluate(expr)
	if err != nil {
		return nil, err
	}
	list, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("%s must be a list of numbers: %w", attrName, err)
	}
	var shape []int
	if err := gocty.FromCtyValue(list, &shape); err != nil {
		return nil, fmt.Errorf("%s: %w", attrName, err)
	}
	if err := checkDims(shape); err != nil {
		return nil, fmt.Errorf("%s: %w", attrName, err)
	}
	if shape == nil {
		shape = []int{}
	}
	return shape, nil
}

// decodeShapes reads a list of shapes.
func decodeShapes(expr hcl.Expression, attrName string) ([][]int, error) {
	val, err := evaluate(expr)
	if err != nil {
		return nil, err
	}
	list, err := convert.Convert(val, cty.List(cty.List(cty.Number)))
	if err != nil {
		return nil, fmt.Errorf("%s must be a list of number lists: %w", attrName, err)
	}
	var shapes [][]int
	if err := gocty.FromCtyValue(list, &shapes); err != nil {
		return nil, fmt.Errorf("%s: %w", attrName, err)
	}
	for i, s := range shapes {
		if err := checkDims(s); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", attrName, i, err)
		}
	}
	return shapes, nil
}

func checkDims(shape []int) error {
	for _, d := range shape {
		if d < 0 {
			return fmt.Errorf("dimension %d is negative", d)
		}
	}
	return nil
}
