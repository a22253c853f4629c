// Package filter compiles expr-lang expressions into release filters for
// the CLI. Expressions see one release at a time as `Release` plus a set of
// helper functions:
//
//	contains(Release.Dirname, "1080p") and Release.GroupName == "GRP"
//	daysSince(released(Release)) < 7 and isTop(Release)
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/relwatch/relwatch/xrel"
)

// Filter is a compiled release filter, safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile parses an expression into an executable filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(buildEnv(xrel.Release{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error(), Err: err}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the original expression text.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one release. Evaluation errors count
// as non-matches; list filtering keeps going.
func (f *Filter) Match(release xrel.Release) bool {
	result, err := expr.Run(f.program, buildEnv(release))
	if err != nil {
		return false
	}
	matched, ok := result.(bool)
	return ok && matched
}

// Apply returns the releases matching the filter, preserving order.
func (f *Filter) Apply(releases []xrel.Release) []xrel.Release {
	var matched []xrel.Release
	for _, release := range releases {
		if f.Match(release) {
			matched = append(matched, release)
		}
	}
	return matched
}

func buildEnv(release xrel.Release) map[string]any {
	return map[string]any{
		"Release": release,

		// Date helpers. Release times are epoch seconds.
		"released": func(r xrel.Release) time.Time {
			return time.Unix(r.Time, 0)
		},
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"now": time.Now,

		// String helpers, all case-insensitive.
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,

		// Release helpers.
		"isNuked": func(r xrel.Release) bool {
			return r.NukeReason != ""
		},
		"isTop": func(r xrel.Release) bool {
			return r.Flags.TopRelease
		},
		"typeIs": func(r xrel.Release, extInfoType string) bool {
			return r.ExtInfo != nil && strings.EqualFold(r.ExtInfo.Type, extInfoType)
		},
	}
}
