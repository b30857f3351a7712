package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"manifest-migrator/internal/gitget"
)

var gitgetFlags struct {
	repo   string
	file   string
	to     string
	branch string
}

var gitgetCmd = &cobra.Command{
	Use:   "gitget",
	Short: "Download a single file from any git repo",
	Long: `Download a single file or folder from any git repo using sparse
checkout. With no --file flag, only the repo's root files are fetched.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client := gitget.NewClient()

		var err error
		if gitgetFlags.file == "" {
			err = client.CheckoutRootFiles(cmd.Context(),
				gitgetFlags.repo, gitgetFlags.branch, gitgetFlags.to)
		} else {
			err = client.CheckoutFile(cmd.Context(),
				gitgetFlags.repo, gitgetFlags.branch, gitgetFlags.file, gitgetFlags.to)
		}

		if err != nil {
			slog.Error("sparse checkout failed", "repo", gitgetFlags.repo, "error", err)
			return err
		}

		slog.Info("fetched", "repo", gitgetFlags.repo, "to", gitgetFlags.to)

		return nil
	},
}

func init() {
	flags := gitgetCmd.Flags()
	flags.StringVar(&gitgetFlags.repo, "git-repo", "", "the git repo")
	flags.StringVar(&gitgetFlags.file, "file", "",
		"the file you want from the git repo; otherwise all root files")
	flags.StringVar(&gitgetFlags.to, "to", "", "the path to the output folder")
	flags.StringVar(&gitgetFlags.branch, "branch", "main",
		"the branch you want from the git repo")

	_ = gitgetCmd.MarkFlagRequired("git-repo")
	_ = gitgetCmd.MarkFlagRequired("to")
}
