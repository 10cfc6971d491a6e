// Package principles defines the shared surface of curation-principle
// checks: the Verdict value every check returns and the metadata that
// names each principle. Individual checks live in subpackages.
package principles
