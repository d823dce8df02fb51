// Package cli implements the interactive terminal front end: a command loop
// over the ProfileService plus the prompt helpers and the dashboard
// rendering. The loop never mutates session state directly; it submits forms
// to the service and renders the snapshot it gets back.
package cli
