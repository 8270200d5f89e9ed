// Package logger is a standardized event logging framework for the shell.
//
// Events are written as newline delimited JSON so a session can be inspected
// or summarized after the fact.
package logger
