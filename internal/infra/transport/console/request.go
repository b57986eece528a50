package console

import (
	"strings"
)

const quitCommand = "q"

// request represents one line typed by the user.
type request struct {
	number string
	quit   bool
}

// parseRequest trims the line and recognises the quit command regardless of case.
func parseRequest(line string) request {
	s := strings.TrimSpace(line)
	if strings.EqualFold(s, quitCommand) {
		return request{quit: true}
	}

	return request{number: s}
}
