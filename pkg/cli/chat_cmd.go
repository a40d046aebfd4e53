package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"catalog-explorer/internal/service/explorer"
	"catalog-explorer/internal/session"
)

const chatHelp = `Type a question to search the catalog.
  :open <id>  show the detail of a dataset
  :close      clear the selected dataset
  :help       show this help
  :quit       exit`

func newAskCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "ask <question...>",
		Short:   "Ask the assistant one question",
		Example: `  explorer ask show datasets with PII in sales`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				return fmt.Errorf("question must not be empty")
			}
			svc, err := env.service()
			if err != nil {
				return err
			}
			reply := session.New(svc).Ask(question).LastReply()
			out := cmd.OutOrStdout()
			if getOutputFormat(cmd) == outputJSON {
				return printJSON(out, map[string]string{"reply": reply})
			}
			_, err = fmt.Fprintln(out, reply)
			return err
		},
	}
}

func newChatCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Reads questions from standard input, one per line, and answers each from
the catalog. Lines starting with ':' are commands; type :help to list them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}
			in := cmd.InOrStdin()
			return runChat(in, cmd.OutOrStdout(), isTerminal(in), svc)
		},
	}
}

func runChat(in io.Reader, out io.Writer, prompt bool, svc *explorer.Service) error {
	promptColor := color.New(color.FgCyan, color.Bold)
	errColor := color.New(color.FgRed)
	if !prompt || !colorEnabled(out) {
		promptColor.DisableColor()
		errColor.DisableColor()
	}

	st := session.New(svc)
	_, _ = fmt.Fprintln(out, st.LastReply())

	sc := bufio.NewScanner(in)
	for {
		if prompt {
			_, _ = promptColor.Fprint(out, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			st = st.Ask(line)
			_, _ = fmt.Fprintf(out, "%s\n\n", st.LastReply())
			continue
		}

		word, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		switch word {
		case ":quit", ":q", ":exit":
			return nil
		case ":help":
			_, _ = fmt.Fprintln(out, chatHelp)
		case ":close":
			st = st.ClearSelection()
			_, _ = fmt.Fprintln(out, "Selection cleared.")
		case ":open":
			if arg == "" {
				_, _ = fmt.Fprintln(out, "usage: :open <id>")
				continue
			}
			next, err := st.Select(arg, svc)
			if err != nil {
				_, _ = errColor.Fprintf(out, "Error: %v\n", err)
				continue
			}
			st = next
			a, _ := st.Selection()
			d := explorer.NewAssetDetail(&a)
			if err := printDetail(out, &d); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out)
		default:
			_, _ = fmt.Fprintf(out, "unknown command %q, type :help\n", word)
		}
	}
	return sc.Err()
}
