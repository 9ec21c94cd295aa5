package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daniilsolovey/powersector-desk/config"
	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/charts"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
)

func newRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "deskctl",
		Short: "Power sector news desk from the terminal",
		Long: `deskctl signs in to the news backend and works on the article desk: browse and
search articles, change sentiment, tag, verify, quote and delete them, view insights
and ask the power sector agent.

Credentials come from --username/--password or DESK_USERNAME/DESK_PASSWORD.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "desk config file (TOML or YAML) to read backend settings from")
	pf.StringVar(&o.baseURL, "url", "", "news backend base URL (DESK_BACKEND_URL)")
	pf.StringVarP(&o.username, "username", "u", "", "backend username (DESK_USERNAME)")
	pf.StringVarP(&o.password, "password", "p", "", "backend password (DESK_PASSWORD)")
	pf.DurationVar(&o.timeout, "timeout", config.DefaultBackendTimeout, "backend request timeout")
	pf.BoolVar(&o.debug, "debug", false, "log backend calls")

	root.AddCommand(
		listCmd(o),
		searchCmd(o),
		sentimentCmd(o),
		verifyCmd(o),
		unverifyCmd(o),
		tagCmd(o),
		deleteCmd(o),
		updateCmd(o),
		quoteCmd(o),
		quotesCmd(o),
		insightsCmd(o),
		askCmd(o),
		registerCmd(o),
	)
	return root
}

// withEditor signs in, runs fn and closes the workspace.
func withEditor(o *options, fn func(cmd *cobra.Command, e *editor, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := openEditor(cmd, o)
		if err != nil {
			return err
		}
		defer e.Close()
		return fn(cmd, e, args)
	}
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid article id %q", raw)
	}
	return id, nil
}

func parseSentiment(raw string) (backend.Sentiment, error) {
	for _, s := range backend.Sentiments {
		if strings.EqualFold(raw, string(s)) {
			return s, nil
		}
	}
	return "", errors.New("sentiment must be one of Positive, Neutral, Negative")
}

// mutationErr turns a failed mutation into the notice an editor would see.
func mutationErr(err error) error {
	if errors.Is(err, desk.ErrNotFound) || errors.Is(err, desk.ErrUnknownField) {
		return err
	}
	return errors.New(desk.Notice(err))
}

func listCmd(o *options) *cobra.Command {
	var (
		verified bool
		page     int
		sources  []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles, one page at a time",
		Args:  cobra.NoArgs,
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, _ []string) error {
			v := e.view(verified)
			v.SetSourceFilter(sources)
			v.GoTo(page - 1)
			renderSnapshot(cmd.OutOrStdout(), v.Snapshot())
			return nil
		}),
	}

	cmd.Flags().BoolVar(&verified, "verified", false, "list verified articles")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().StringSliceVar(&sources, "source", nil, "only show these news sources")
	return cmd
}

func searchCmd(o *options) *cobra.Command {
	var verified bool

	cmd := &cobra.Command{
		Use:   "search TERM",
		Short: "Search articles",
		Args:  cobra.MinimumNArgs(1),
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, args []string) error {
			v := e.view(verified)
			e.search(v, strings.Join(args, " "))
			renderSnapshot(cmd.OutOrStdout(), v.Snapshot())
			return nil
		}),
	}

	cmd.Flags().BoolVar(&verified, "verified", false, "search verified articles")
	return cmd
}

func sentimentCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sentiment ID SENTIMENT",
		Short: "Change the sentiment of an article",
		Args:  cobra.ExactArgs(2),
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := parseSentiment(args[1])
			if err != nil {
				return err
			}

			res, err := e.Cards.ChooseSentiment(cmd.Context(), id, s)
			if err != nil {
				return mutationErr(err)
			}
			renderResult(cmd.OutOrStdout(), "sentiment", res)
			return nil
		}),
	}
}

func verifyCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify ID",
		Short: "Mark an article verified",
		Args:  cobra.ExactArgs(1),
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			res, err := e.Verify(cmd.Context(), id)
			if err != nil {
				return mutationErr(err)
			}
			renderResult(cmd.OutOrStdout(), "verify", res)
			return nil
		}),
	}
}

func unverifyCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "unverify ID",
		Short: "Send a verified article back to pending",
		Args:  cobra.ExactArgs(1),
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			res, err := e.Unverify(cmd.Context(), id)
			if err != nil {
				return mutationErr(err)
			}
			renderResult(cmd.OutOrStdout(), "unverify", res)
			return nil
		}),
	}
}

func tagCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage article tags",
	}

	add := &cobra.Command{
		Use:   "add ID NAME",
		Short: "Add a tag",
		Args:  cobra.ExactArgs(2),
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			res, err := e.Cards.SubmitTag(cmd.Context(), id, args[1])
			if err != nil {
				return mutationErr(err)
			}
			renderResult(cmd.OutOrStdout(), "tag add", res)
			return nil
		}),
	}

	rm := &cobra.Command{
		Use:     "rm ID NAME",
		Aliases: []string{"remove"},
		Short:   "Remove a tag",
		Args:    cobra.ExactArgs(2),
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			res, err := e.Cards.RemoveTag(cmd.Context(), id, args[1])
			if err != nil {
				return mutationErr(err)
			}
			renderResult(cmd.OutOrStdout(), "tag rm", res)
			return nil
		}),
	}

	sentiment := &cobra.Command{
		Use:   "sentiment ID NAME SENTIMENT",
		Short: "Change the sentiment of a tag",
		Args:  cobra.ExactArgs(3),
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := parseSentiment(args[2])
			if err != nil {
				return err
			}

			res, err := e.Cards.SetTagSentiment(cmd.Context(), id, args[1], s)
			if err != nil {
				return mutationErr(err)
			}
			renderResult(cmd.OutOrStdout(), "tag sentiment", res)
			return nil
		}),
	}

	cmd.AddCommand(add, rm, sentiment)
	return cmd
}

func deleteCmd(o *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an article",
		Args:  cobra.ExactArgs(1),
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			confirmed := yes
			if !confirmed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", desk.DeleteConfirmPrompt)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				confirmed = answer == "y" || answer == "yes"
			}

			res, err := e.Cards.RequestDelete(cmd.Context(), id, confirmed)
			if err != nil {
				return mutationErr(err)
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "delete: cancelled")
				return nil
			}
			if res.Applied {
				fmt.Fprintf(cmd.OutOrStdout(), "delete: article #%d deleted\n", id)
				return nil
			}
			renderResult(cmd.OutOrStdout(), "delete", res)
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func updateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "update ID url|author|source VALUE",
		Short: "Update the URL, author or source of an article",
		Args:  cobra.ExactArgs(3),
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			res, err := e.Cards.SubmitField(cmd.Context(), id, backend.Field(strings.ToLower(args[1])), args[2])
			if err != nil {
				return mutationErr(err)
			}
			renderResult(cmd.OutOrStdout(), "update "+args[1], res)
			return nil
		}),
	}
}

func quoteCmd(o *options) *cobra.Command {
	var person, sentiment string

	cmd := &cobra.Command{
		Use:   "quote ID QUOTE",
		Short: "Attach a quote to an article",
		Args:  cobra.MinimumNArgs(2),
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			// validation reports a missing or bad sentiment together with the other fields
			res, err := e.Cards.SubmitQuote(cmd.Context(), id, strings.Join(args[1:], " "), person, backend.Sentiment(sentiment))
			if err != nil {
				return mutationErr(err)
			}
			renderResult(cmd.OutOrStdout(), "quote", res)
			return nil
		}),
	}

	cmd.Flags().StringVar(&person, "person", "", "person quoted")
	cmd.Flags().StringVar(&sentiment, "sentiment", "", "Positive, Neutral or Negative")
	return cmd
}

func quotesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "quotes NAME",
		Short: "Show the verified quote sentiment of a quoted person",
		Args:  cobra.MinimumNArgs(1),
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, args []string) error {
			out := cmd.OutOrStdout()
			matches := e.Quotes.Match(cmd.Context(), strings.Join(args, " "))
			if len(matches) == 0 {
				fmt.Fprintln(out, noticeStyle.Render("No quoted person matches."))
				return nil
			}

			person := matches[0].PersonQuoted
			if len(matches) > 1 {
				names := make([]string, len(matches))
				for i, m := range matches {
					names[i] = m.PersonQuoted
				}
				fmt.Fprintln(out, metaStyle.Render("Matches: "+strings.Join(names, ", ")))
			}

			months, err := e.Quotes.Breakdown(cmd.Context(), person)
			if err != nil {
				return mutationErr(err)
			}
			renderChart(out, charts.QuoteBreakdown(person, months))
			return nil
		}),
	}
}

func insightsCmd(o *options) *cobra.Command {
	var (
		verified bool
		from, to string
	)

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show sentiment by source, top tags and the news summary",
		Args:  cobra.NoArgs,
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, _ []string) error {
			r, err := desk.ParseDateRange(from, to)
			if err != nil {
				return mutationErr(err)
			}

			scope := backend.ScopeAll
			if verified {
				scope = backend.ScopeVerified
			}

			out := cmd.OutOrStdout()
			data := e.Insights.Load(cmd.Context(), scope, r)
			fmt.Fprintln(out, metaStyle.Render(data.RangeLabel))

			renderChart(out, charts.SentimentBars(charts.SourcesTitle, data.Sentiment, "source"))
			renderChart(out, charts.SentimentBars(charts.TagsTitle, data.TopTags, "tag_name"))

			if s := data.Summary; s != nil {
				share := charts.SummaryShare(*s)
				fmt.Fprintf(out, "%s\n  %d articles: %.1f%% positive, %.1f%% neutral, %.1f%% negative\n",
					headlineStyle.Render("News Summary"), s.TotalArticles, share.Positive, share.Neutral, share.Negative)
				if s.Summary != "" {
					fmt.Fprint(out, renderMarkdown(s.Summary))
				}
			}

			for name, msg := range data.Errors {
				fmt.Fprintln(out, noticeStyle.Render(fmt.Sprintf("%s failed to load: %s", name, msg)))
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&verified, "verified", false, "only verified articles")
	cmd.Flags().StringVar(&from, "from", "", "start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "end date, YYYY-MM-DD")
	return cmd
}

func askCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ask QUESTION",
		Short: "Ask the power sector agent",
		Args:  cobra.MinimumNArgs(1),
		RunE: withEditor(o, func(cmd *cobra.Command, e *editor, args []string) error {
			reply := e.Chat.Ask(cmd.Context(), strings.Join(args, " "))
			if reply.Text == "" {
				return errors.New("question is empty")
			}
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(reply.Text))
			return nil
		}),
	}
}

func registerCmd(o *options) *cobra.Command {
	var (
		email       string
		acceptTerms bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a backend account with --username and --password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bo, err := o.backendOptions()
			if err != nil {
				return err
			}
			username, password, err := o.credentials()
			if err != nil {
				return err
			}

			client, err := backend.New(bo, o.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			err = desk.Register(cmd.Context(), client, desk.RegistrationForm{
				Username:  username,
				Email:     email,
				Password1: password,
				Password2: password,
				Terms:     acceptTerms,
			})
			if err != nil {
				return errors.New(desk.Notice(err))
			}

			fmt.Fprintln(cmd.OutOrStdout(), desk.MsgRegistered)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().BoolVar(&acceptTerms, "accept-terms", false, "agree to the Terms and Conditions")
	return cmd
}
