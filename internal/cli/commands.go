package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/durp-dev/durp/internal/version"
	"github.com/durp-dev/durp/pkg/config"
	"github.com/durp-dev/durp/pkg/logging"
	"github.com/durp-dev/durp/pkg/types"
	"github.com/durp-dev/durp/pkg/ui/report"
	"github.com/durp-dev/durp/pkg/validate"
	"github.com/durp-dev/durp/pkg/walker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// predicateFlags selects the structural check applied to components
type predicateFlags struct {
	require    []string
	requireAll []string
	acceptAll  bool
}

func (p *predicateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&p.require, "require", nil, MsgFlagRequire)
	cmd.Flags().StringSliceVar(&p.requireAll, "require-all", nil, MsgFlagRequireAll)
	cmd.Flags().BoolVar(&p.acceptAll, "accept-all", false, MsgFlagAcceptAll)
	cmd.MarkFlagsMutuallyExclusive("require", "accept-all")
	cmd.MarkFlagsMutuallyExclusive("require-all", "accept-all")
}

func (p *predicateFlags) predicate() types.Predicate {
	if p.acceptAll {
		return validate.AcceptAll
	}

	var preds []types.Predicate
	if len(p.require) > 0 {
		preds = append(preds, validate.RequireAnyCategory(p.require...))
	}
	if len(p.requireAll) > 0 {
		preds = append(preds, validate.RequireCategories(p.requireAll...))
	}
	switch len(preds) {
	case 0:
		return validate.DefaultPredicate
	case 1:
		return preds[0]
	default:
		return validate.All(preds...)
	}
}

func newFindCmd(s *settings) *cobra.Command {
	var (
		mode    string
		collect bool
		timeout string
		preds   predicateFlags
	)

	cmd := &cobra.Command{
		Use:     "find [root]",
		Short:   MsgFindShort,
		Long:    MsgFindLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.find")

			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			if cmd.Flags().Changed("mode") {
				s.cfg.Walk.Mode = mode
			}
			if collect {
				s.cfg.Walk.Mode = string(walker.ModeCollect)
			}
			if cmd.Flags().Changed("timeout") {
				if err := applyTimeout(s, timeout); err != nil {
					return err
				}
			}
			walkMode, err := s.cfg.WalkMode()
			if err != nil {
				return err
			}

			renderer, err := s.renderer(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if s.cfg.Walk.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, s.cfg.Walk.Timeout)
				defer cancel()
			}

			logger.Info().
				Str("root", root).
				Str("marker", s.cfg.Marker.Name).
				Str("mode", string(walkMode)).
				Msg("Starting find")

			result, err := s.finder(walkMode).Walk(ctx, preds.predicate(), root)
			if err != nil {
				return s.fail(cmd, err)
			}

			if err := renderer.Render(report.New(root, s.cfg.Marker.Name, walkMode, result)); err != nil {
				return err
			}
			return result.Err()
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", MsgFlagMode)
	cmd.Flags().BoolVar(&collect, "collect", false, MsgFlagCollect)
	cmd.Flags().StringVar(&timeout, "timeout", "", MsgFlagTimeout)
	cmd.MarkFlagsMutuallyExclusive("mode", "collect")
	preds.register(cmd)

	return cmd
}

func newCheckCmd(s *settings) *cobra.Command {
	var preds predicateFlags

	cmd := &cobra.Command{
		Use:     "check <path>",
		Short:   MsgCheckShort,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := s.finder(walker.ModeFailFast).Validate(args[0], preds.predicate())
			if err != nil {
				return s.fail(cmd, err)
			}
			if s.cfg.Output.Format == "" || s.cfg.Output.Format == "auto" {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgCheckOK, listing.Path)
				return err
			}
			return s.renderListing(cmd, args[0], listing)
		},
	}
	preds.register(cmd)

	return cmd
}

func newClassifyCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:     "classify <path>",
		Short:   MsgClassifyShort,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := s.finder(walker.ModeFailFast).Classify(args[0])
			if err != nil {
				return s.fail(cmd, err)
			}
			return s.renderListing(cmd, args[0], listing)
		},
	}
}

func newDetectCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:     "detect <path>...",
		Short:   MsgDetectShort,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			finder := s.finder(walker.ModeFailFast)
			for _, path := range args {
				probe, err := finder.Probe(path)
				if err != nil {
					return err
				}
				log.Debug().Str("path", path).Str("status", string(probe.Status)).AnErr("cause", probe.Cause).Msg("Probed")
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), MsgDetectFormat, probe.Status, path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// renderListing renders a single listing as a one-component report
func (s *settings) renderListing(cmd *cobra.Command, path string, listing types.DirectoryListing) error {
	renderer, err := s.renderer(cmd)
	if err != nil {
		return err
	}
	rep := report.New(path, s.cfg.Marker.Name, walker.ModeFailFast, walker.Result{
		Components: []types.DirectoryListing{listing},
	})
	return renderer.Render(rep)
}

func applyTimeout(s *settings, value string) error {
	s.cfg.Walk.Timeout = 0
	if value == "" {
		return nil
	}
	d, err := parseDuration(value)
	if err != nil {
		return err
	}
	s.cfg.Walk.Timeout = d
	return s.cfg.Validate()
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "defaults",
		Short: MsgDefaultsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), config.DefaultsContent())
			return err
		},
	})
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			header := &doc.GenManHeader{
				Title:   "DURP",
				Section: "1",
				Source:  "durp " + version.Version,
				Manual:  "durp manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "man", MsgFlagManDir)

	return cmd
}
