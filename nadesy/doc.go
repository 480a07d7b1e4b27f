// Package nadesy compiles NadeSy, the small brace language of the
// detonator, into detonator CPU programs.
//
// Source is tokenized, built into a tree of nested layers (scopes,
// statements, expressions), lowered into concoctions and assembled.
// Only conditionals are lowered; their conditions and bodies are produced
// by a CondEmitter.
package nadesy
