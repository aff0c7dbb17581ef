package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finsight/finsight"
	"github.com/google/subcommands"
)

// exportCmd writes a backup file with all records.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all records to a backup file" }
func (*exportCmd) Usage() string {
	return `fin export [-o <file>]

  Writes every transaction, investment and debt as one JSON document.
  Without -o the backup goes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, _, err := openBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := finsight.EncodeBackup(out, finsight.Export(b)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing backup: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported %d transactions, %d investments, %d debts to %s\n",
			len(b.Transactions), len(b.Investments), len(b.Debts), c.output)
	}
	return subcommands.ExitSuccess
}

// importCmd replaces all records with a backup file's content.
type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import records from a backup file" }
func (*importCmd) Usage() string {
	return `fin import <file>

  Replaces every collection with the backup content. A bare JSON array is
  accepted and treated as transactions only.
`
}

func (*importCmd) SetFlags(_ *flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import takes exactly one backup file")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	backup, err := finsight.DecodeBackup(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	b, st, err := openBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	b.Import(backup)

	if status := saveBook(ctx, st, b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Imported %d transactions, %d investments, %d debts\n",
		len(b.Transactions), len(b.Investments), len(b.Debts))
	return subcommands.ExitSuccess
}

// resetCmd loads the bundled sample data set.
type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "replace all records with the sample data set" }
func (*resetCmd) Usage() string {
	return `fin reset

  Replaces every collection with the bundled sample records.
`
}

func (*resetCmd) SetFlags(_ *flag.FlagSet) {}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, st, err := openBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	b.Import(finsight.SampleBackup())

	if status := saveBook(ctx, st, b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println("Sample data loaded.")
	return subcommands.ExitSuccess
}
