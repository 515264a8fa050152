package main

import (
	"bondhu/internal/config"
	"bondhu/internal/model"
	"bondhu/internal/personality"
	"bondhu/internal/service"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bondhuctl",
		Short:         "Inspect the Bondhu personality questionnaire and scoring",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newQuestionsCommand())
	rootCmd.AddCommand(newScoreCommand())
	rootCmd.AddCommand(newPromptCommand())
	rootCmd.AddCommand(newTokenCommand())
	return rootCmd
}

func newQuestionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the questionnaire in presentation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, q := range personality.DefaultBank().Questions() {
				marker := ""
				if q.IsReversed {
					marker = gray(" (reversed)")
				}
				fmt.Fprintf(out, "%2d. [%s] %s%s\n", q.ID, q.TraitID, q.Text, marker)
			}
			return nil
		},
	}
}

func newScoreCommand() *cobra.Command {
	var file string
	var withInsights bool

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a responses file",
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := scoreFile(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, t := range model.Traits {
				score := scores.Score(t)
				fmt.Fprintf(out, "%-18s %3d  %s\n", t.Name()+":", score, colorBand(personality.ClassifyBand(score)))
			}

			if withInsights {
				for _, insight := range personality.GenerateTraitInsights(scores) {
					fmt.Fprintf(out, "\n%s (%s)\n", bold(insight.TraitID.Name()), insight.Level)
					fmt.Fprintf(out, "  %s\n", insight.Description)
					fmt.Fprintf(out, "  %s %s\n", gray("Bondhu:"), insight.BondhuAdaptation)
					for _, s := range insight.GrowthSuggestions {
						fmt.Fprintf(out, "  - %s\n", s)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON responses file (use - for stdin)")
	cmd.Flags().BoolVar(&withInsights, "insights", false, "Print per-trait insights")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newPromptCommand() *cobra.Command {
	var file string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the LLM system prompt for a responses file",
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := scoreFile(file)
			if err != nil {
				return err
			}

			llmCtx := personality.GenerateLLMContext(scores)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(llmCtx)
			}
			fmt.Fprintln(cmd.OutOrStdout(), llmCtx.SystemPrompt)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON responses file (use - for stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full context as JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newTokenCommand() *cobra.Command {
	var userID string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a user token signed with the configured secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			resp, err := service.NewAuthService(cfg.Auth.JWTSecret).IssueUserToken(userID, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "User id placed in the token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func colorBand(b model.Band) string {
	switch b {
	case model.BandHigh:
		return green(string(b))
	case model.BandLow:
		return red(string(b))
	}
	return yellow(string(b))
}

// scoreFile reads either a bare {"1":5,...} map or a {"responses":{...}} body
func scoreFile(path string) (model.PersonalityScores, error) {
	responses, err := readResponses(path)
	if err != nil {
		return model.PersonalityScores{}, err
	}
	return personality.CalculateScores(responses)
}

func readResponses(path string) (model.ResponseMap, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if raw, ok := fields["responses"]; ok {
		data = raw
	}

	var responses model.ResponseMap
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return responses, nil
}
