package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/wmiitile/internal/script"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	scenarioPage = "wmiitile-scenario"
)

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Write wmiitile manuals",
	Long: `Write one page per wmiitile command, plus wmiitile-scenario, the
reference for the scenario files read by 'wmiitile run' and 'wmiitile play'.

Formats:
  man       wmiitile*.1 command pages and wmiitile-scenario.5
  markdown  one .md file per page

Man pages go to $XDG_DATA_HOME/man (default ~/.local/share/man) unless
--output is given. Markdown goes to ./docs.`,
	Example: `  wmiitile gen-docs
  wmiitile gen-docs --format markdown --output ./site/docs`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "directory to write pages into")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "page format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	var write func(dir string) ([]string, error)
	switch genDocsFormat {
	case "man":
		write = writeManPages
	case "markdown":
		write = writeMarkdownPages
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	dir := genDocsOutputDir
	if dir == "" {
		var err error
		if dir, err = defaultDocsDir(genDocsFormat); err != nil {
			return err
		}
	}

	rootCmd.DisableAutoGenTag = true
	written, err := write(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d pages to %s\n", len(written), dir)
	for _, name := range written {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}

func defaultDocsDir(format string) (string, error) {
	if format == "markdown" {
		return "docs", nil
	}
	dir, err := userManDir()
	if err != nil {
		return "", fmt.Errorf("resolve man directory: %w", err)
	}
	return dir, nil
}

// writeManPages fills dir/man1 with the command pages and dir/man5 with the
// scenario reference. dir is the manpath root, not a section directory.
func writeManPages(dir string) ([]string, error) {
	now := time.Now()
	source := "wmiitile " + buildInfo.Version

	man1 := filepath.Join(dir, "man1")
	if err := os.MkdirAll(man1, dirPerm); err != nil {
		return nil, fmt.Errorf("create %s: %w", man1, err)
	}
	header := &doc.GenManHeader{Title: "WMIITILE", Section: "1", Source: source, Manual: "wmiitile Manual", Date: &now}
	if err := doc.GenManTree(rootCmd, header, man1); err != nil {
		return nil, fmt.Errorf("generate man pages: %w", err)
	}

	man5 := filepath.Join(dir, "man5")
	if err := os.MkdirAll(man5, dirPerm); err != nil {
		return nil, fmt.Errorf("create %s: %w", man5, err)
	}
	var md bytes.Buffer
	fmt.Fprintf(&md, "%% %s 5 %q %q %q\n\n", "WMIITILE-SCENARIO", now.Format("Jan 2006"), source, "wmiitile Manual")
	writeScenarioReference(&md)
	page := filepath.Join(man5, scenarioPage+".5")
	if err := os.WriteFile(page, md2man.Render(md.Bytes()), filePerm); err != nil {
		return nil, fmt.Errorf("write scenario page: %w", err)
	}

	return listPages(filepath.Join(man1, "*.1"), page)
}

func writeMarkdownPages(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
		return nil, fmt.Errorf("generate markdown docs: %w", err)
	}

	written, err := listPages(filepath.Join(dir, "wmiitile*.md"))
	if err != nil {
		return nil, err
	}

	var md bytes.Buffer
	writeScenarioReference(&md)
	page := filepath.Join(dir, scenarioPage+".md")
	if err := os.WriteFile(page, md.Bytes(), filePerm); err != nil {
		return nil, fmt.Errorf("write scenario page: %w", err)
	}
	return append(written, filepath.Base(page)), nil
}

// writeScenarioReference renders the scenario language as markdown that both
// GitHub and md2man accept.
func writeScenarioReference(w io.Writer) {
	fmt.Fprintf(w, "# NAME\n\n%s - layout scenario files for wmiitile\n\n", scenarioPage)
	fmt.Fprint(w, "# DESCRIPTION\n\n"+
		"A scenario holds one command per line. Arguments are separated by spaces. "+
		"Blank lines and lines starting with # are skipped. "+
		"Commands run in order against a fresh layout and the first failing expect stops the run.\n\n")

	fmt.Fprint(w, "# COMMANDS\n\n")
	writeSyntax(w, script.Commands())
	fmt.Fprint(w, "# EXPECTATIONS\n\n")
	writeSyntax(w, script.Expectations())

	fmt.Fprint(w, "# SEE ALSO\n\n**wmiitile-run(1)**, **wmiitile-play(1)**\n")
}

func writeSyntax(w io.Writer, entries []script.Syntax) {
	for _, s := range entries {
		fmt.Fprintf(w, "- `%s`\n\n  %s Example: `%s`\n\n", s.Usage, s.Summary, s.Example)
	}
}

func listPages(pattern string, extra ...string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches)+len(extra))
	for _, p := range append(matches, extra...) {
		names = append(names, filepath.Base(p))
	}
	return names, nil
}

// userManDir returns $XDG_DATA_HOME/man, defaulting to ~/.local/share/man.
func userManDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "man"), nil
}
