package request

import (
	"context"

	cErr "stundenmanager/internal/pkg/error"
)

type decodeViolationsKey struct{}

// WithDecodeViolations 把 JSON 解碼時型別不符的欄位帶進 ctx，service 驗證時一起回報
func WithDecodeViolations(ctx context.Context, violations []cErr.Violation) context.Context {
	if len(violations) == 0 {
		return ctx
	}
	return context.WithValue(ctx, decodeViolationsKey{}, violations)
}

func DecodeViolations(ctx context.Context) []cErr.Violation {
	violations, _ := ctx.Value(decodeViolationsKey{}).([]cErr.Violation)
	return violations
}

// MergeViolations 解碼錯誤在前；同欄位的規則錯誤（型別錯誤留下的零值）不再重複
func MergeViolations(decoded []cErr.Violation, validated []cErr.Violation) []cErr.Violation {
	if len(decoded) == 0 {
		return validated
	}
	seen := make(map[string]struct{}, len(decoded))
	merged := make([]cErr.Violation, 0, len(decoded)+len(validated))
	for _, v := range decoded {
		seen[v.Field] = struct{}{}
		merged = append(merged, v)
	}
	for _, v := range validated {
		if _, ok := seen[v.Field]; ok {
			continue
		}
		merged = append(merged, v)
	}
	return merged
}
