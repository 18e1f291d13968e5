package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/felsokning/codeninjas/apis/deutschewelle"
	"github.com/felsokning/codeninjas/apis/hackernews"
	"github.com/felsokning/codeninjas/apis/smhi"
)

var (
	newsLanguage string
	storyCount   int
)

var dwCmd = &cobra.Command{
	Use:   "dw",
	Short: "Deutsche Welle news",
}

var dwNewsCmd = &cobra.Command{
	Use:   "news",
	Short: "Print the last day of Deutsche Welle articles in one language",
	Example: `  codeninjas dw news --language English
  codeninjas dw news --language 13`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		language, err := deutschewelle.ParseLanguage(newsLanguage)
		if err != nil {
			return err
		}
		client, err := deutschewelle.New(clientOptions(nil)...)
		if err != nil {
			return err
		}
		defer client.Close()

		result, err := client.GetLatestNews(cmd.Context(), language)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var smhiCmd = &cobra.Command{
	Use:   "smhi",
	Short: "SMHI weather warnings",
}

var smhiWarningsCmd = &cobra.Command{
	Use:   "warnings",
	Short: "Print the current SMHI impact based weather warnings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := smhi.New(cmd.Context(), clientOptions(nil)...)
		if err != nil {
			return err
		}
		defer client.Close()

		warnings, err := client.GetRecentWarnings(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), warnings)
	},
}

var hnCmd = &cobra.Command{
	Use:   "hn",
	Short: "Hacker News stories",
}

var hnTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Print top stories, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runStories(cmd, (*hackernews.Client).GetTopStories)
	},
}

var hnShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print Show HN stories, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runStories(cmd, (*hackernews.Client).ShowTopStories)
	},
}

func runStories(cmd *cobra.Command, list func(*hackernews.Client, context.Context, int) ([]hackernews.Story, error)) error {
	client, err := hackernews.New(clientOptions(nil)...)
	if err != nil {
		return err
	}
	defer client.Close()

	stories, err := list(client, cmd.Context(), storyCount)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), stories)
}

func init() {
	dwNewsCmd.Flags().StringVarP(&newsLanguage, "language", "l", deutschewelle.LanguageEnglish.String(), "Language name or id")
	dwCmd.AddCommand(dwNewsCmd)

	smhiCmd.AddCommand(smhiWarningsCmd)

	for _, c := range []*cobra.Command{hnTopCmd, hnShowCmd} {
		c.Flags().IntVarP(&storyCount, "count", "n", 10, "Number of stories; 0 or less fetches all")
	}
	hnCmd.AddCommand(hnTopCmd, hnShowCmd)

	rootCmd.AddCommand(dwCmd, smhiCmd, hnCmd)
}
