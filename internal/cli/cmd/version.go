package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/wmiitile/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Println(styles.NewVersionRenderer(app.Theme).Render(app.BuildInfo))
	return nil
}
