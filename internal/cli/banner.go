package cli

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the Lychee ASCII banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Soft red-to-pink gradient, one line per shade.
	s1 := termenv.String("  _               _               ").Foreground(p.Color("#fb7185"))
	s2 := termenv.String(" | |   _   _  ___| |__   ___  ___ ").Foreground(p.Color("#f472b6"))
	s3 := termenv.String(" | |  | | | |/ __| '_ \\ / _ \\/ _ \\").Foreground(p.Color("#e879f9"))
	s4 := termenv.String(" | |__| |_| | (__| | | |  __/  __/").Foreground(p.Color("#c084fc"))
	s5 := termenv.String(" |_____\\__, |\\___|_| |_|\\___|\\___|").Foreground(p.Color("#a78bfa"))
	s6 := termenv.String("       |___/                      ").Foreground(p.Color("#818cf8"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
