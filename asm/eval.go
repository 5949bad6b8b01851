package asm

import (
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// parenExpr matches one $( ... ) compile-time expression. The body may
// hold anything but another '$', nested parentheses included.
var parenExpr = regexp.MustCompile(`\$\([^\$]*\)`)

// expand substitutes every $( ... ) expression in line with its decimal
// value. Both passes see the same expansion, since lines are expanded
// once, at classification.
func (asm *Assembler) expand(lineno int, line string) (expanded string, err error) {
	expanded = parenExpr.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(lineno, str[2:len(str)-1])
		if _err != nil {
			err = _err
			return str
		}
		return strconv.FormatInt(value, 10)
	})
	return
}

// parenEval evaluates one compile-time expression with the predefines
// in scope.
func (asm *Assembler) parenEval(lineno int, expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}
	for key, str := range asm.predefine {
		value32, verr := valueOf(str)
		if verr != nil {
			// Non-numeric predefines are not visible to expressions.
			continue
		}
		// Words are signed in expressions, as they are at the ALU.
		pred[key] = starlark.MakeInt(int(int32(value32)))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = st_int64
	return
}
