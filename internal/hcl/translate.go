// This file contains the logic for evaluating the automaton attributes of an
// HCL document and normalizing their cty values into strings.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/dfarun/internal/config"
	"github.com/specialistvlad/dfarun/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// isExprDefined checks if an HCL expression was actually present in the
// source. The decoder populates omitted optional fields with zero-width
// placeholder expressions, so a nil check alone is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}

	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// translateDocument evaluates every automaton attribute of root.
func translateDocument(ctx context.Context, source string, root *fileRoot) (*config.Document, error) {
	doc := &config.Document{
		Source:        source,
		Description:   root.Description,
		Regex:         root.Regex,
		AcceptStrings: root.AcceptStrings,
		RejectStrings: root.RejectStrings,
	}

	var err error
	if doc.States, err = evalStrings(root.States, "states"); err != nil {
		return nil, err
	}
	if doc.Alphabet, err = evalStrings(root.Alphabet, "alphabet"); err != nil {
		return nil, err
	}
	if doc.FinalStates, err = evalStrings(root.FinalStates, "final_states"); err != nil {
		return nil, err
	}

	start, err := evalValue(root.StartState, "start_state")
	if err != nil {
		return nil, err
	}
	if doc.StartState, err = scalarString(start, "start_state"); err != nil {
		return nil, err
	}

	if doc.Transitions, err = evalTransitions(ctx, root.Transitions); err != nil {
		return nil, err
	}
	return doc, nil
}

func evalValue(expr hcl.Expression, attrName string) (cty.Value, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate %q: %w", attrName, diags)
	}
	if !val.IsWhollyKnown() {
		return cty.NilVal, fmt.Errorf("attribute %q must be a known value", attrName)
	}
	return val, nil
}

// evalStrings evaluates a list, tuple or set of scalars.
func evalStrings(expr hcl.Expression, attrName string) ([]string, error) {
	val, err := evalValue(expr, attrName)
	if err != nil {
		return nil, err
	}

	ty := val.Type()
	if val.IsNull() || !(ty.IsListType() || ty.IsTupleType() || ty.IsSetType()) {
		return nil, fmt.Errorf("attribute %q must be a list, got %s", attrName, ty.FriendlyName())
	}

	out := make([]string, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		s, err := scalarString(elem, fmt.Sprintf("%s[%d]", attrName, len(out)))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// scalarString renders a string, number or bool value as a string.
func scalarString(val cty.Value, what string) (string, error) {
	if val.IsNull() {
		return "", fmt.Errorf("%s must not be null", what)
	}
	ty := val.Type()
	if !ty.IsPrimitiveType() {
		return "", fmt.Errorf("%s must be a string, number or bool, got %s", what, ty.FriendlyName())
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("cannot convert %s to string: %w", what, err)
	}
	return converted.AsString(), nil
}

// evalTransitions evaluates the nested `state -> symbol -> state` mapping.
// Object and map values iterate in key order, which keeps the result stable.
func evalTransitions(ctx context.Context, expr hcl.Expression) ([]config.Transition, error) {
	logger := ctxlog.FromContext(ctx)

	val, err := evalValue(expr, "transitions")
	if err != nil {
		return nil, err
	}
	if !isMapping(val) {
		return nil, fmt.Errorf("attribute \"transitions\" must be an object of objects, got %s", val.Type().FriendlyName())
	}

	var out []config.Transition
	for it := val.ElementIterator(); it.Next(); {
		fromVal, row := it.Element()
		from := fromVal.AsString()
		if !isMapping(row) {
			return nil, fmt.Errorf("transitions from state %q must be an object, got %s", from, row.Type().FriendlyName())
		}

		for rowIt := row.ElementIterator(); rowIt.Next(); {
			symbolVal, toVal := rowIt.Element()
			symbol := symbolVal.AsString()
			to, err := scalarString(toVal, fmt.Sprintf("transition (%s, %s)", from, symbol))
			if err != nil {
				return nil, err
			}
			out = append(out, config.Transition{From: from, Symbol: symbol, To: to})
		}
	}

	logger.Debug("Translated transitions.", "count", len(out))
	return out, nil
}

func isMapping(val cty.Value) bool {
	if val.IsNull() {
		return false
	}
	ty := val.Type()
	return ty.IsObjectType() || ty.IsMapType()
}
