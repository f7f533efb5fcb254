// Command phase-deuce populates a random daily log of customers for
// businesses offering table service: press SPACE to append one checksummed
// record, Q or X or CTRL-C to exit.
package main

import (
	"os"

	phasedeuce "github.com/gregkrsak/phase-deuce"
)

func main() {
	os.Exit(phasedeuce.Run(os.Args[1:]))
}
