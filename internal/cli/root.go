package cli

import (
	"embed"
	"io/fs"

	"github.com/durp-dev/durp/internal/version"
	"github.com/durp-dev/durp/pkg/cobrax/topics"
	"github.com/durp-dev/durp/pkg/components"
	"github.com/durp-dev/durp/pkg/config"
	"github.com/durp-dev/durp/pkg/logging"
	"github.com/durp-dev/durp/pkg/ui"
	"github.com/durp-dev/durp/pkg/walker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// settings holds the resolved configuration shared by every subcommand
type settings struct {
	verbosity  int
	configFile string
	envFile    string
	marker     string
	format     string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	s := &settings{}

	rootCmd := &cobra.Command{
		Use:     "durp",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(s.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return s.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&s.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&s.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&s.envFile, "env-file", ".env", MsgFlagEnvFile)
	flags.StringVarP(&s.marker, "marker", "m", "", MsgFlagMarker)
	flags.StringVarP(&s.format, "format", "f", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newFindCmd(s))
	rootCmd.AddCommand(newCheckCmd(s))
	rootCmd.AddCommand(newClassifyCmd(s))
	rootCmd.AddCommand(newDetectCmd(s))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic-based help from the embedded topics directory
	if sub, err := fs.Sub(topicFiles, "topics"); err == nil {
		opts := topics.Options{
			Extensions: []string{".md", ".txt"},
			Renderer:   topics.NewGlamourRenderer(),
		}
		if err := topics.InitializeWithOptions(rootCmd, sub, opts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

// load resolves configuration and applies flags set on the command line
func (s *settings) load(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Options{
		ConfigFile: s.configFile,
		EnvFile:    s.envFile,
	})
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("marker") {
		cfg.Marker.Name = s.marker
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = s.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.cfg = cfg
	return nil
}

// finder builds a Finder on the real filesystem for the configured marker
func (s *settings) finder(mode walker.Mode) *components.Finder {
	return components.NewFinder(components.Options{
		MarkerName: s.cfg.Marker.Name,
		Mode:       mode,
	})
}

// renderer returns the renderer for the configured output format
func (s *settings) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(s.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}
