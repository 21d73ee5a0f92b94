// Command attrschema provisions the product attribute tables.
package main

import "github.com/mesh-intelligence/attrschema/internal/cli"

func main() {
	cli.Execute()
}
