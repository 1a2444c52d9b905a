// Command sweep builds swept solids from the command line.
//
// Usage:
//
//	sweep robots scene.yaml --out ./solids
//	sweep path --box "0,1 0,1" --path "0,0,0 0,0,1" --out box.json
//	sweep path --interval -0.5,0.5 --path "0,0 2,2 0,4" --png band.png
//	sweep preview band.json --out band.png
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
