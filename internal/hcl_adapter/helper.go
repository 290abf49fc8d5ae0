package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/puzzlegrid/internal/config"
	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the source
// code. The HCL decoder often populates optional fields with non-nil, zero-width
// expression objects, so a simple nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Expression is nil, considering it undefined.", "attribute", attrName)
		return false
	}

	// A real attribute occupies bytes in the file, while a placeholder for an
	// omitted optional attribute has a zero-width range.
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)

	return isDefined
}

// decodeWant evaluates a `want` expression into a map of part number to the
// expected answer. Keys are either `partN` or `N`; values must be whole numbers.
func decodeWant(ctx context.Context, expr hcl.Expression) (map[int]int, error) {
	if !isExprDefined(ctx, expr, "want") {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid want expression: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("want must be an object like { part1 = 42 }, got %s", ty.FriendlyName())
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("want must be a constant value")
	}

	want := make(map[int]int)
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		if !v.Type().Equals(cty.Number) {
			return nil, fmt.Errorf("want.%s must be a number, got %s", k.AsString(), v.Type().FriendlyName())
		}
		var answer int
		if err := gocty.FromCtyValue(v, &answer); err != nil {
			return nil, fmt.Errorf("want.%s: %w", k.AsString(), err)
		}
		if err := config.AddWant(want, k.AsString(), answer); err != nil {
			return nil, err
		}
	}
	return want, nil
}
