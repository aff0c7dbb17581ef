// Package cmd implements the CLI application to track personal finances.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finsight/finsight"
	"github.com/finsight/finsight/store"
	"github.com/google/subcommands"
)

// Commands is the list a main package registers with its commander.
var Commands = []subcommands.Command{
	&txCmd{},
	&addCmd{},
	&investCmd{},
	&holdingsCmd{},
	&debtCmd{},
	&summaryCmd{},
	&forecastCmd{},
	&payoffCmd{},
	&exportCmd{},
	&importCmd{},
	&resetCmd{},
	&assistCmd{},
	&serveCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("data-dir", ".finsight", "Path to the data folder")
var user = flag.String("user", "local", "User whose records to operate on")

// openBook loads the current user's book from the file store. A first run
// starts from the sample records, which are persisted right away.
func openBook(ctx context.Context) (*finsight.Book, *store.FileStore, error) {
	st := store.NewFileStore(*dataDir)
	b, seeded, err := store.LoadBook(ctx, st, *user)
	if err != nil {
		return nil, nil, err
	}
	if seeded {
		if err := store.SaveBook(ctx, st, *user, b); err != nil {
			return nil, nil, err
		}
	}
	return b, st, nil
}

// saveBook writes the whole book back to the file store.
func saveBook(ctx context.Context, st *store.FileStore, b *finsight.Book) subcommands.ExitStatus {
	if err := store.SaveBook(ctx, st, *user, b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving data: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
