package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts shapes (or anything printable) into random readable
// names. It flagrantly leaks memory but generates the names lazily, so
// it's not a problem unless you're actually using it. Helpful for
// telling near-identical shapes apart in debug output.

var memo map[string]string

func init() {
	memo = make(map[string]string)
	// Names are handed out in order of demand, so keep them
	// nondeterministic as a reminder that the same name doesn't refer
	// to the same shape between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	key := fmt.Sprintf("%#v", obj)
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
