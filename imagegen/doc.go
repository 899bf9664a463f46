// Package imagegen generates article illustrations and saves them as
// local assets.
//
// A Client turns one prompt into image bytes; DALLE implements it with
// DALL-E 3 and Mock scripts results for tests. Saver writes the decoded
// bytes under a per-project directory with a sanitized filename and
// returns the public URL the exported article references.
package imagegen
