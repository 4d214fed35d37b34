// Package cratesio is a collection of utilities to make performing certain
// calculations more convenient.
//
// The core is AddOne, which adds one to the number given. Overflow at MaxInt
// wraps, just like the `+` operator; use AddOneChecked or AddOneSaturating,
// or an Incrementer bound to an OverflowPolicy, when that is not wanted.
//
// Color mixing lives in the art sub package.
package cratesio
