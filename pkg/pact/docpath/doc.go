// Package docpath implements the dot/bracket path-expression language used
// to address positions inside JSON bodies, XML bodies, headers and query
// strings for matching-rule and generator configuration.
//
// A path such as "$.animals[0].*" parses into a token sequence
// (Root, Field("animals"), Index(0), Star) that can be rendered back to its
// canonical string form, weighed against a concrete path to decide whether
// a rule configured at that expression applies to a specific position, and
// resolved against a decoded JSON or XML tree to enumerate every concrete
// position it reaches.
package docpath
