package check

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"attest/internal/conf"
	"attest/internal/spec"
)

// Wrap returns a function with the same signature as fn that validates
// every argument against in and every return value against out before
// handing them through. A nil entry leaves that position unchecked.
// The wrapper panics with a *Violation when a value fails its
// specification; the sites that call wrapped functions are exactly the
// sites that cannot return an extra error.
func Wrap(fn any, in, out []spec.Raw, cfg *conf.Config) (any, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T is not a function", spec.ErrNotASpec, fn)
	}
	t := v.Type()
	if t.IsVariadic() {
		return nil, fmt.Errorf("cannot wrap variadic function %s", FuncName(fn))
	}
	if in != nil && len(in) != t.NumIn() {
		return nil, fmt.Errorf("%d parameter specifications for function %s taking %d parameters",
			len(in), FuncName(fn), t.NumIn())
	}
	if out != nil && len(out) != t.NumOut() {
		return nil, fmt.Errorf("%d return specifications for function %s returning %d values",
			len(out), FuncName(fn), t.NumOut())
	}

	name := FuncName(fn)
	wrapped := reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		for i, arg := range args {
			if in == nil || in[i] == nil {
				continue
			}
			label := fmt.Sprintf("parameter #%d of %s", i, name)
			if err := Check(arg.Interface(), in[i], name, label, cfg); err != nil {
				panic(err)
			}
		}
		rets := v.Call(args)
		for i, ret := range rets {
			if out == nil || out[i] == nil {
				continue
			}
			label := fmt.Sprintf("return value #%d of %s", i, name)
			if err := Check(ret.Interface(), out[i], name, label, cfg); err != nil {
				panic(err)
			}
		}
		return rets
	})
	return wrapped.Interface(), nil
}

// FuncName returns the short name of a function value for error text.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return "<not a function>"
	}
	pc := runtime.FuncForPC(v.Pointer())
	if pc == nil {
		return "<anonymous>"
	}
	name := pc.Name()
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

// NumParams reports how many parameters a function takes, a plain
// read-only introspection query.
func NumParams(fn any) (int, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return 0, fmt.Errorf("%T is not a function", fn)
	}
	return v.Type().NumIn(), nil
}

// IsVariadic reports whether a function's final parameter is variadic.
func IsVariadic(fn any) (bool, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return false, fmt.Errorf("%T is not a function", fn)
	}
	return v.Type().IsVariadic(), nil
}
