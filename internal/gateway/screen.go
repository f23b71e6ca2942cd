package gateway

import (
	"fmt"
	"strings"
	"time"
)

const (
	screenWidth  = 78
	screenBanner = "LEGACY CLAIMS SYSTEM  -  MAINFRAME GATEWAY"
	screenFooter = "PF1=HELP   PF3=EXIT   PF7=UP   PF8=DOWN   PF12=CANCEL"
)

// renderScreen builds the fixed-width terminal block that accompanies every
// successful command. Output is byte-for-byte reproducible for the same
// title, row count and timestamp.
func renderScreen(title string, rowCount int, ts time.Time) string {
	border := "+" + strings.Repeat("-", screenWidth) + "+"

	var b strings.Builder
	writeLine := func(s string) {
		b.WriteString("|")
		b.WriteString(padScreenLine(s))
		b.WriteString("|\n")
	}

	b.WriteString(border)
	b.WriteString("\n")
	writeLine(centerScreenLine(screenBanner))
	b.WriteString(border)
	b.WriteString("\n")
	writeLine(" QUERY:  " + title)
	writeLine(" TIME:   " + ts.Format("2006-01-02 15:04:05"))
	writeLine(fmt.Sprintf(" ROWS:   %d", rowCount))
	writeLine(" STATUS: COMPLETE")
	b.WriteString(border)
	b.WriteString("\n")
	writeLine(" " + screenFooter)
	b.WriteString(border)
	b.WriteString("\n")
	return b.String()
}

func padScreenLine(s string) string {
	if len(s) > screenWidth {
		return s[:screenWidth]
	}
	return s + strings.Repeat(" ", screenWidth-len(s))
}

func centerScreenLine(s string) string {
	if len(s) >= screenWidth {
		return s
	}
	left := (screenWidth - len(s)) / 2
	return strings.Repeat(" ", left) + s
}
