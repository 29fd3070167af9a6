// Package syntax declares the lossless statement and expression trees the
// rewriter works on.
//
// Nodes are immutable values: every "modification" copies the node (and only
// the path down to the changed token), sharing untouched children with the
// original. Each node reaches its first and last token, and rendering a node
// writes every token with its leading and trailing trivia verbatim, so a
// freshly parsed file renders back byte-for-byte.
//
// Constructs outside the understood subset are held as Raw statements: plain
// token runs that render losslessly but carry no structure. This lets the
// scanner walk arbitrary files while only giving structure to the statements
// it can rewrite.
package syntax
