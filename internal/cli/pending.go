package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lilducky98/monodevelop-tfs-addin/internal/decoder"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/wire"
)

type pendingOptions struct {
	keepGoing bool
}

func (a *app) newPendingCommand() *cobra.Command {
	opts := &pendingOptions{}

	cmd := &cobra.Command{
		Use:   "pending FILE",
		Short: "Decode every GetOperation record in FILE (\"-\" for stdin).",
		Long: `Decode every GetOperation record in FILE and print it.

Artifact locations are composed against the item endpoint of the configured
repository; without one they are printed as bare query strings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPending(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.keepGoing, "keep-going", "k", false, "Log and skip malformed records")

	return cmd
}

func (a *app) runPending(cmd *cobra.Command, source string, opts *pendingOptions) error {
	repo, err := a.repository(false)
	if err != nil {
		return err
	}
	var itemBaseURL string
	if repo != nil {
		itemBaseURL = repo.ItemURL()
	}

	elements, err := readRecords(cmd, source, decoder.PendingOperationElement)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, el := range elements {
		op, err := a.decoders.PendingOperations.Decode(itemBaseURL, el)
		if err != nil {
			if opts.keepGoing {
				a.logger.Warn().Err(err).Int("record", i).Msg("skipping malformed record")
				continue
			}
			return fmt.Errorf("record %d: %w", i, err)
		}

		if _, err = fmt.Fprintln(out, op.String()); err != nil {
			return err
		}
	}

	return nil
}

func readRecords(cmd *cobra.Command, source, element string) ([]*wire.Element, error) {
	rc, err := openSource(cmd, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return wire.ReadElements(rc, element)
}
