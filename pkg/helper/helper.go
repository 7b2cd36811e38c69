package helper

import (
	"runtime"
	"strings"
)

const unknownFunc = "unknown"

// GetFuncName returns the caller's function name without its module path,
// e.g. "documentservice.(*Service).InsertItem".
func GetFuncName() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return unknownFunc
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownFunc
	}

	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
