// aliascheck resolves text through the alias table, for curating the
// alias file: pass a product name and see what the resolver makes of it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/kaiyo-foods/receiptlines/internal/alias"
	"github.com/kaiyo-foods/receiptlines/internal/common"
)

func main() {
	aliasPath := flag.String("aliases", "", "alias YAML path (overrides ALIAS_FILE)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: aliascheck [--aliases file] TEXT...")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	path := common.LoadConfig().Pipeline.AliasPath
	if *aliasPath != "" {
		path = *aliasPath
	}
	table, err := alias.Load(path, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load aliases: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(table.Resolve(strings.Join(flag.Args(), " ")))
}
