package ui

import "fmt"

// StatusLine formats the generation and population counters shown by every
// host.
func StatusLine(generation, alive int) string {
	return fmt.Sprintf("cycles : [%5d], cells : [%4d]", generation, alive)
}
