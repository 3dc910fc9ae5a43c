// Command fnq applies path lookup and keyed grouping to JSON and YAML
// documents.
//
//	fnq group --key make cars.json
//	fnq diff --key make --other sold.yaml stock.json
//	fnq get --path 'items[0].name' < order.json
package main

import (
	"os"

	"github.com/hasbyte1/go-fn-utils/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
