package version

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/color"
	"github.com/vodhub/vodhub/constant"
	"github.com/vodhub/vodhub/icon"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/style"
	"github.com/vodhub/vodhub/util"
)

// Notify displays a terminal alert if a more recent stable application version is available.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err == nil && comp <= 0 {
		return
	}

	fmt.Fprintf(os.Stderr, `
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/vodhub/vodhub/releases/tag/v"+version),
	)

}
