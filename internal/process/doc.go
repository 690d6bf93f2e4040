// Package process terminates the headless browser started for PDF output,
// including the helper processes Chrome forks.
package process
