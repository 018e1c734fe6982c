// Package open hands stream urls to the external web player and launches urls with the system's default handler.
package open

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vodhub/vodhub/constant"
)

// PlayerURL embeds the stream url into the player url template.
// The template holds a single %s that receives the query-escaped stream url.
func PlayerURL(template, stream string) (string, error) {
	if template == "" {
		template = constant.DefaultPlayerTemplate
	}

	if strings.Count(template, "%s") != 1 {
		return "", fmt.Errorf("player url template must contain exactly one %%s: %q", template)
	}

	return fmt.Sprintf(template, url.QueryEscape(stream)), nil
}

// Start opens the specified input using the default system handler asynchronously.
func Start(input string) error {
	cmd, ok := command(input)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func command(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
