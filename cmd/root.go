// Package cmd implements the command-line interface for vodhub.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/color"
	"github.com/vodhub/vodhub/config"
	"github.com/vodhub/vodhub/constant"
	"github.com/vodhub/vodhub/icon"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/log"
	"github.com/vodhub/vodhub/style"
	"github.com/vodhub/vodhub/util"
	"github.com/vodhub/vodhub/version"
	"github.com/vodhub/vodhub/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("source", "S", "", "Source to query, by key")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", completionSources))
	lo.Must0(viper.BindPFlag(key.SourcesDefault, rootCmd.PersistentFlags().Lookup("source")))

	rootCmd.PersistentFlags().BoolP("json", "j", false, "Format the command output as JSON")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Write the command output to a file")
	rootCmd.PersistentFlags().Uint("retries", 0, "Retry failed provider requests this many times")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context())
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the vodhub application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Browse, search and play titles from interchangeable video sources",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse, search and play titles from interchangeable video sources"),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			cmd.Println(constant.App, constant.Version)
			return
		}

		runLanding(cmd, mustApp())
	},
}

func completionSources(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	catalog, err := config.Catalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return catalog.Keys(), cobra.ShellCompDirectiveNoFileComp
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), style.Fg(style.ErrorColor)(strings.Trim(err.Error(), " \n")))
		os.Exit(1)
	}
}
