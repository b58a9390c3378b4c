// Command lvsnap loads a dynamic network file and inspects its snapshots.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
