package game

import "github.com/atotto/clipboard"

// writeClipboard puts s on the system clipboard.
func writeClipboard(s string) error {
	if s == "" {
		s = " "
	}
	return clipboard.WriteAll(s)
}
