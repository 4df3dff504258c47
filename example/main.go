// Package main demonstrates usage of the scg-narrate packages in a small
// CLI, including contextual wrapping, help messages, reporting and exit
// codes.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	// Debug logging is off unless DEBUG_NARRATE is set; the demo's real
	// output is what the report package writes to stderr.
	if os.Getenv("DEBUG_NARRATE") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	Execute()
}
