// spiderweb runs circular spider-web simulations: contest hop counts, YAML
// scenarios, a terminal viewer and the bridge puzzle search.
//
// Usage:
//
//	spiderweb solve [--zero-based] [file]
//	spiderweb run [--metrics] <scenario.yaml>
//	spiderweb view <scenario.yaml>
//	spiderweb puzzle --strands=<n> --favorite=<s> --start=<t> [file]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
