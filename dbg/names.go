package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// This converts pointers into random readable names, which makes log output
// about polygons much easier to follow than raw addresses or arena ids. Names
// are generated lazily and never released, so only use this for debugging and
// logging.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable readable name for a pointer for the lifetime of the
// process. Nil pointers are named "Ø".
func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Label is Name coloured by the vertex count of the named polygon: red when it
// cannot bound a region, cyan for triangles, green otherwise.
func Label(obj interface{}, vertexCount int) string {
	name := Name(obj)
	switch {
	case vertexCount < 3:
		return aurora.Red(name).String()
	case vertexCount == 3:
		return aurora.Cyan(name).String()
	default:
		return aurora.Green(name).String()
	}
}
