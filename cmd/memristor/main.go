// Command memristor characterises memristor devices from the command line.
package main

import (
	"github.com/sarchlab/memristor/cmd/memristor/cmd"
)

func main() {
	cmd.Execute()
}
