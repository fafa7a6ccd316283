package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names, which helps when
// staring at traces full of builder pointers and coordinate slices. It
// flagrantly leaks memory, but names are generated lazily, so it costs
// nothing unless you actually use it.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so we make them
	// nondeterministic to remind the user that the same name doesn't refer
	// to the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || (reflect.ValueOf(obj).Kind() == reflect.Ptr && reflect.ValueOf(obj).IsNil()) {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
