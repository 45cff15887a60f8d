package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"bullprompt-backend/internal/controller"
	"bullprompt-backend/internal/services"

	"github.com/spf13/cobra"
)

// textFlags is the --text / --text-file pair shared by add and edit.
type textFlags struct {
	text string
	file string
}

func (f *textFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.text, "text", "", "prompt text")
	cmd.Flags().StringVar(&f.file, "text-file", "", `read the prompt text from a file, "-" for stdin`)
	cmd.MarkFlagsMutuallyExclusive("text", "text-file")
}

// value returns the text and whether either flag was given.
func (f *textFlags) value(cmd *cobra.Command) (string, bool, error) {
	switch {
	case f.file == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), true, err
	case f.file != "":
		b, err := os.ReadFile(f.file)
		return string(b), true, err
	default:
		return f.text, cmd.Flags().Changed("text"), nil
	}
}

func checkTagCount(tags []string) error {
	var distinct []string
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" && !slices.Contains(distinct, tag) {
			distinct = append(distinct, tag)
		}
	}
	if len(distinct) > services.MaxTags {
		return fmt.Errorf("maximum %d tags allowed, got %d", services.MaxTags, len(distinct))
	}
	return nil
}

func newAddCmd(a *app) *cobra.Command {
	var (
		name string
		text textFlags
		tags []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a new prompt",
		Args:  cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			if err := checkTagCount(tags); err != nil {
				return err
			}
			body, _, err := text.value(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			c, _, err := a.controller(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			_, _ = c.Dispatch(ctx, controller.OpenCreate())
			for _, tag := range tags {
				_, _ = c.Dispatch(ctx, controller.AddFormTag(tag))
			}
			v, err := c.Dispatch(ctx, controller.Submit(name, body))
			if err != nil {
				return err
			}

			prompts := c.State().Prompts
			if v.Notification != nil && len(prompts) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", v.Notification.Message, prompts[len(prompts)-1].ID)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "prompt name")
	text.register(cmd)
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "tag to attach (repeatable, 1 to 5)")
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var (
		name       string
		text       textFlags
		tags       []string
		addTags    []string
		removeTags []string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the name, text or tags of a prompt",
		Args:  cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, _, err := a.controller(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			if _, err := c.Dispatch(ctx, controller.OpenEdit(args[0])); err != nil {
				return err
			}
			form := c.State().Form

			next := form.Tags
			if cmd.Flags().Changed("tag") {
				next = tags
			}
			next = slices.DeleteFunc(append(slices.Clone(next), addTags...), func(t string) bool {
				return slices.Contains(removeTags, strings.TrimSpace(t))
			})
			if err := checkTagCount(next); err != nil {
				return err
			}
			for _, tag := range form.Tags {
				_, _ = c.Dispatch(ctx, controller.RemoveFormTag(tag))
			}
			for _, tag := range next {
				_, _ = c.Dispatch(ctx, controller.AddFormTag(tag))
			}

			if !cmd.Flags().Changed("name") {
				name = form.Name
			}
			body, given, err := text.value(cmd)
			if err != nil {
				return err
			}
			if !given {
				body = form.Text
			}

			v, err := c.Dispatch(ctx, controller.Submit(name, body))
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), v)
			return nil
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	text.register(cmd)
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "replace all tags (repeatable)")
	cmd.Flags().StringSliceVar(&addTags, "add-tag", nil, "tag to add (repeatable)")
	cmd.Flags().StringSliceVar(&removeTags, "remove-tag", nil, "tag to remove (repeatable)")
	return cmd
}

func newRmCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a prompt",
		Args:    cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			confirm := func(string) bool { return true }
			if !yes {
				confirm = askConfirm(cmd.InOrStdin(), cmd.ErrOrStderr())
			}

			ctx := cmd.Context()
			c, _, err := a.controller(ctx, controller.WithConfirm(confirm))
			if err != nil {
				return err
			}
			defer c.Close()

			v, err := c.Dispatch(ctx, controller.Delete(args[0]))
			if err != nil {
				return err
			}
			if v.Notification == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
				return nil
			}
			report(cmd.OutOrStdout(), v)
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

// askConfirm prompts on out and accepts "y" or "yes" from in.
func askConfirm(in io.Reader, out io.Writer) controller.ConfirmFunc {
	return func(message string) bool {
		fmt.Fprintf(out, "%s [y/N] ", message)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}

// writerClipboard "copies" by writing the text to a stream.
type writerClipboard struct {
	w io.Writer
}

func (c writerClipboard) WriteText(_ context.Context, text string) error {
	_, err := fmt.Fprintln(c.w, text)
	return err
}

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <id>",
		Short: "Print the full text of a prompt, ready to pipe into a clipboard tool",
		Args:  cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, _, err := a.controller(ctx, controller.WithClipboard(writerClipboard{w: cmd.OutOrStdout()}))
			if err != nil {
				return err
			}
			defer c.Close()

			_, err = c.Dispatch(ctx, controller.Copy(args[0]))
			return err
		}),
	}
}
