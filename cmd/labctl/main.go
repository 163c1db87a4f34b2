// Command labctl is the operator tool of the writing lab backend.
//
// Usage:
//
//	labctl migrate up|down|status
//	labctl feedback render <file|->
//	labctl records list
//
// Commands that touch the database read the same configuration as the
// server (CONFIG_PATH and environment).
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
