// localuuid CLI - random by default, reproducible on request.
package main

import "github.com/kchason/CDO-Utility-Local-UUID/internal/cli"

func main() {
	cli.Execute()
}
