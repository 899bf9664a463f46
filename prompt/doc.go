// Package prompt builds the system and user prompts for each workflow
// step.
//
// Every generable step ships with a French default template pair. An
// operator can replace either half with a stored override; overrides win
// wholesale, there is no merging. Templates reference workflow data with
// {{name}} tokens which Interpolate substitutes from a Variables map.
// Tokens without a value are left in place so a malformed template is
// visible in the output instead of silently collapsing.
package prompt
