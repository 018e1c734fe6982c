package cmd

import (
	"encoding/json"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vodhub/vodhub/color"
	"github.com/vodhub/vodhub/constant"
	"github.com/vodhub/vodhub/style"
	"github.com/vodhub/vodhub/version"
)

type buildInfo struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"builtAt"`
	BuiltBy  string `json:"builtBy"`
	Platform string `json:"platform"`
}

// currentBuild falls back to the vcs stamp of the binary when no -ldflags were given.
func currentBuild() buildInfo {
	info := buildInfo{
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok && info.Revision == "unknown" {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Revision = s.Value
			case "vcs.time":
				info.BuiltAt = s.Value
			}
		}
	}

	return info
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := currentBuild()
		if asJson(cmd) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}

		defer version.Notify(cmd.Context())

		label := style.New().Faint(true).Width(12).Render
		cmd.Println(style.Fg(color.Purple)("▇▇▇ " + constant.App))
		for _, row := range [][2]string{
			{"Version", info.Version},
			{"Revision", info.Revision},
			{"Built at", info.BuiltAt},
			{"Built by", info.BuiltBy},
			{"Platform", info.Platform},
		} {
			cmd.Printf("  %s %s\n", label(row[0]), style.Bold(row[1]))
		}
	},
}
