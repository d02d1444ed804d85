package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lilducky98/monodevelop-tfs-addin/internal/adapter"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/decoder"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/workers"
	"github.com/lilducky98/monodevelop-tfs-addin/models"
)

type itemsOptions struct {
	resolve     bool
	downloadDir string
	keepGoing   bool
	jobs        int
}

func (a *app) newItemsCommand() *cobra.Command {
	opts := &itemsOptions{}

	cmd := &cobra.Command{
		Use:   "items FILE",
		Short: "Decode every Item record in FILE (\"-\" for stdin).",
		Long: `Decode every Item record in FILE and print them ordered by server path.
Records naming the same server path are reported once, keeping the snapshot
with the highest changeset.

--resolve and --download need a repository URL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runItems(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.resolve, "resolve", "r", false, "Resolve artifact locations")
	cmd.Flags().StringVarP(&opts.downloadDir, "download", "d", "", "Download file content into DIR")
	cmd.Flags().BoolVarP(&opts.keepGoing, "keep-going", "k", false, "Log and skip malformed records and failed resolutions")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", workers.DefaultSize, "Artifacts resolved or downloaded in parallel")

	return cmd
}

func (a *app) runItems(cmd *cobra.Command, source string, opts *itemsOptions) error {
	repo, err := a.repository(opts.resolve || opts.downloadDir != "")
	if err != nil {
		return err
	}

	elements, err := readRecords(cmd, source, decoder.VersionedItemElement)
	if err != nil {
		return err
	}

	latest := make(map[string]*models.VersionedItem, len(elements))
	for i, el := range elements {
		item, err := a.decoders.VersionedItems.Decode(repo, el)
		if err != nil {
			if opts.keepGoing {
				a.logger.Warn().Err(err).Int("record", i).Msg("skipping malformed record")
				continue
			}
			return fmt.Errorf("record %d: %w", i, err)
		}

		if seen, ok := latest[item.Key()]; !ok || item.ChangesetID > seen.ChangesetID {
			latest[item.Key()] = item
		}
	}

	items := make([]*models.VersionedItem, 0, len(latest))
	for _, item := range latest {
		items = append(items, item)
	}
	models.SortVersionedItems(items)

	var (
		reports []artifactReport
		errs    []error
	)
	if opts.resolve || opts.downloadDir != "" {
		reports, errs = processArtifacts(cmd.Context(), repo, items, opts)
	}

	out := cmd.OutOrStdout()
	for i, item := range items {
		if _, err = fmt.Fprintln(out, item.String()); err != nil {
			return err
		}
		if reports == nil {
			continue
		}
		if errs[i] != nil {
			if err = a.skipOrFail(opts, item, errs[i]); err != nil {
				return err
			}
			continue
		}
		if err = reports[i].write(out); err != nil {
			return err
		}
	}

	return nil
}

// artifactReport is what processing one item's artifact produced.
type artifactReport struct {
	location *url.URL
	saved    string
}

func (r artifactReport) write(out io.Writer) error {
	if r.location == nil {
		return nil
	}
	if _, err := fmt.Fprintf(out, "\t Artifact: %s\n", r.location); err != nil {
		return err
	}
	if r.saved == "" {
		return nil
	}
	_, err := fmt.Fprintf(out, "\t Saved: %s\n", r.saved)
	return err
}

// processArtifacts resolves and optionally downloads the artifact of every
// item on a worker pool. Reports and errors are index-aligned with items.
func processArtifacts(ctx context.Context, repo adapter.RepositoryClient, items []*models.VersionedItem, opts *itemsOptions) ([]artifactReport, []error) {
	reports := make([]artifactReport, len(items))
	jobs := make([]workers.Job, len(items))
	for i, item := range items {
		jobs[i] = func(ctx context.Context) error {
			report, err := processArtifact(ctx, repo, item, opts.downloadDir)
			reports[i] = report
			return err
		}
	}

	return reports, workers.NewPool(opts.jobs).Run(ctx, jobs)
}

// processArtifact resolves the artifact of item and, when dir is set,
// downloads it below dir. Folders are skipped.
func processArtifact(ctx context.Context, repo adapter.RepositoryClient, item *models.VersionedItem, dir string) (artifactReport, error) {
	if item.ItemType == models.ItemTypeFolder {
		return artifactReport{}, nil
	}

	location, err := item.ResolveArtifactLocation(ctx)
	if err != nil {
		return artifactReport{}, err
	}
	report := artifactReport{location: location}

	if dir == "" {
		return report, nil
	}

	target := localTarget(dir, item.ServerItem)
	if err = repo.DownloadFile(ctx, location, target); err != nil {
		return artifactReport{}, err
	}
	report.saved = target
	return report, nil
}

func (a *app) skipOrFail(opts *itemsOptions, item *models.VersionedItem, err error) error {
	if !opts.keepGoing {
		return fmt.Errorf("%s: %w", item.ServerItem, err)
	}
	a.logger.Warn().Err(err).Str("item", item.ServerItem).Msg("skipping item")
	return nil
}

// localTarget maps a server path below dir. The "$/" root is dropped and
// parent references are cleaned away so the result stays inside dir.
func localTarget(dir, serverItem string) string {
	rel := strings.TrimPrefix(serverItem, models.RootFolder)
	rel = filepath.Clean(string(filepath.Separator) + filepath.FromSlash(rel))
	return filepath.Join(dir, rel)
}
