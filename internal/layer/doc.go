// Package layer implements the closed set of layer variants a network
// descriptor may use. Each variant carries its own parameter payload and
// knows how to infer its output shapes and how to describe itself in a
// rendered graph.
//
// The set is closed: New is the only constructor and Layer cannot be
// implemented outside this package.
package layer
