// Package script analyzes embedded script snippets (python and csharp
// dialects) with a line-oriented lexical heuristic and composes deterministic
// manual setup guides from the findings. It intentionally avoids a real
// parser - false positives and negatives are an accepted accuracy bound.
package script
