// Package server exposes the production pipeline to operators over
// HTTP: JSON endpoints for clients, projects, steps, images, prompt
// overrides, cost reports and exports, plus a server-sent-events
// stream for step generation.
package server
