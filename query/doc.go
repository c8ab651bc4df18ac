// Package query evaluates expressions against jot documents.
//
// # Usage
//
//	res := parse.Parse(d)
//	y, err := query.Eval(res.Root, `age >= 21 && has("$.name")`)
//
// Expressions use the expr language. Members of a root object are in
// scope by name, and three functions reach further: get(path) fetches
// any value by comment path, has(path) tests for one, and getenv(name)
// reads the process environment.
package query
