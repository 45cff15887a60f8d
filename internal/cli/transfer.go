package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: `Write the library as YAML to a file, or stdout when omitted or "-"`,
		Args:  cobra.MaximumNArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			n, err := a.svc.ExportYAML(cmd.Context(), &buf)
			if err != nil {
				return err
			}

			if len(args) == 1 && args[0] != "-" {
				if err := os.WriteFile(args[0], buf.Bytes(), 0o644); err != nil {
					return err
				}
			} else if _, err := buf.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d prompts.\n", n)
			return nil
		}),
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: `Add every prompt from a YAML export, "-" reads stdin`,
		Args:  cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			report, err := a.svc.ImportYAML(cmd.Context(), r)
			if report != nil {
				for _, f := range report.Failures {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipped entry %d (%q): %s\n", f.Index, f.Name, f.Reason)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d prompts.\n", len(report.Imported))
			}
			return err
		}),
	}
}
