package utils

import (
	"fmt"
	"strings"

	"github.com/knetic/govaluate"
)

// GetExpressionFunctions defines functions usable in manifest check expressions.
func GetExpressionFunctions() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		// Size helpers so manifests can write "size <= MiB(4)" instead of
		// spelling out byte counts.
		"KiB": func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("KiB expects 1 argument")
			}

			// --- Careful argument conversion (govaluate often uses float64) ---
			n, ok := args[0].(float64)
			if !ok {
				return nil, fmt.Errorf("arg 1 must be numeric for KiB")
			}

			return n * 1024, nil
		},
		"MiB": func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("MiB expects 1 argument")
			}

			n, ok := args[0].(float64)
			if !ok {
				return nil, fmt.Errorf("arg 1 must be numeric for MiB")
			}

			return n * 1024 * 1024, nil
		},
	}
}

// EvaluateSizeCheck runs a manifest check expression against the input image
// size. The expression sees the byte count as 'size' and must evaluate to a
// boolean; false means the image fails the guard.
func EvaluateSizeCheck(expr string, size int) error {
	evaluable, err := govaluate.NewEvaluableExpressionWithFunctions(expr, GetExpressionFunctions())
	if err != nil {
		return fmt.Errorf("invalid check expression %q: %w", expr, err)
	}

	result, err := evaluable.Evaluate(map[string]interface{}{
		"size": float64(size),
	})
	if err != nil {
		return fmt.Errorf("failed to evaluate check expression %q: %w", expr, err)
	}

	passed, ok := result.(bool)
	if !ok {
		return fmt.Errorf("check expression %q did not evaluate to a boolean (got %v)", expr, result)
	}
	if !passed {
		return fmt.Errorf("check expression %q failed for input size %d", expr, size)
	}
	return nil
}

// IsValidCheckExpression screens out empty and placeholder expressions before
// any parsing is attempted.
func IsValidCheckExpression(expr string) bool {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" || trimmed == "..." {
		return false // Empty or placeholder is invalid here
	}
	return true
}
