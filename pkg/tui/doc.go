// Package tui provides the interactive terminal front end: a survey-backed
// prompt driver behind the PromptDriver seam, and a Session that walks the
// conversion questions and invokes the pipeline once, synchronously, with
// errors surfaced as return values.
package tui
