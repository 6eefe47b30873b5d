package constants

import "time"

const (
	//
	// LogPrefixFmt pads every logger's "≪name≫" prefix so that messages line up in the console.
	//
	LogPrefixFmt = "%-17s "

	//
	// DefaultTimeout bounds a single round trip to an exchange when the caller does not provide a
	// transport of their own.
	//
	DefaultTimeout = 10 * time.Second

	//
	// DefaultJournalSize is how many completed requests a client remembers.
	//
	DefaultJournalSize = 64
)
