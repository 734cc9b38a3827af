package cmd

import "github.com/spf13/cobra"

type rootOptions struct {
	configPath string
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "shellchat",
		Short:         "Multi-user network shell with chat",
		Long:          "shellchat serves a line-oriented shell over TCP and WebSocket. Connected users run pipelines, pipe output to each other and chat with who, tell, yell and name.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/shellchat/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(opts),
		newConnectCmd(),
		newConfigCmd(opts),
	)

	return rootCmd
}
