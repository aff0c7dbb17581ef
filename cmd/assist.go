package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/finsight/finsight"
	"github.com/finsight/finsight/advisor"
)

// assistCmd is the subcommand for the AI advisor.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI advisor" }
func (*assistCmd) Usage() string {
	return `fin assist [question]

  Starts an interactive session with the AI advisor. The advisor sees a
  snapshot of your records. Credentials come from GEMINI_API_KEY and
  OPENAI_API_KEY; either one is enough. Say "bye" to quit.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, _, err := openBook(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}

	models, err := buildModels(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)
	a := advisor.New(log, models...)

	view := b.Settings.View
	sum := finsight.NewSummary(b, view, finsight.CurrentRef(view))
	snapshot := advisor.BuildContext(b, sum)

	var history []advisor.Message
	ask := func(question string) bool {
		history = append(history, advisor.Message{Role: advisor.RoleUser, Content: question})
		reply, err := a.Ask(ctx, advisor.WithContext(history, snapshot))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Advisor failed:", err)
			return false
		}
		history = append(history, advisor.Message{Role: advisor.RoleAssistant, Content: reply})
		printMarkdown(reply)
		return true
	}

	if f.NArg() > 0 {
		if !ask(strings.Join(f.Args(), " ")) {
			return subcommands.ExitFailure
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "bye") {
			break
		}
		ask(line)
	}
	return subcommands.ExitSuccess
}

// buildModels assembles the candidate chain from the available credentials.
func buildModels(ctx context.Context) ([]advisor.Model, error) {
	var gem *genai.Client
	if os.Getenv("GEMINI_API_KEY") != "" {
		var err error
		gem, err = genai.NewClient(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("initializing Gemini client: %w", err)
		}
	}
	var oa *openai.Client
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		oa = openai.NewClient(key)
	}
	models := advisor.DefaultModels(gem, oa)
	if len(models) == 0 {
		return nil, fmt.Errorf("no advisor credentials: set GEMINI_API_KEY or OPENAI_API_KEY")
	}
	return models, nil
}
