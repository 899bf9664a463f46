// Package llm abstracts the text model behind the workflow engine.
//
// The engine only needs one operation: stream a completion for a
// system/user prompt pair and report token usage at the end. OpenAI
// implements it for production; Mock scripts responses for tests.
package llm
