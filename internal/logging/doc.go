// Package logging provides the structured logger used across drills.
// Commands depend on the Logger interface; the backend is zerolog.
package logging
