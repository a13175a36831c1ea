package cli

// Command descriptions
const (
	MsgRootShort = "Find components in a directory tree"
	MsgRootLong  = `durp finds components: directories holding a marker file (bean.json by
default) whose contents pass a structural check. Each component is reported
with its immediate entries grouped by file extension.

The marker name comes from --marker, DURP_NAME, a config file or the
default, in that order.`

	MsgFindShort = "Find every component under a directory"
	MsgFindLong  = `Find walks root (the current directory by default) depth-first and prints
every component found, parents before the components nested inside them.

By default the walk stops at the first component that fails validation.
With --collect it records the failure and keeps going, and exits non-zero
at the end if anything failed.`

	MsgCheckShort    = "Validate a single component directory"
	MsgClassifyShort = "Show a directory's entries grouped by extension"
	MsgDetectShort   = "Report whether directories hold a usable marker file"
	MsgVersionShort  = "Print version information"
	MsgManShort      = "Generate man pages"
	MsgConfigShort   = "Inspect durp configuration"
	MsgDefaultsShort = "Print the built-in default configuration"

	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = `To load completions:

Bash:
  $ source <(durp completion bash)

Zsh:
  $ durp completion zsh > "${fpath[1]}/_durp"

Fish:
  $ durp completion fish | source

PowerShell:
  PS> durp completion powershell | Out-String | Invoke-Expression
`
)

// Flag descriptions
const (
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Config file (default $XDG_CONFIG_HOME/durp/config.toml)"
	MsgFlagEnvFile    = "Env file read for DURP_* settings"
	MsgFlagMarker     = "Marker file name identifying a component"
	MsgFlagFormat     = "Output format: auto, term, text, json, yaml, toml, tree, markdown"
	MsgFlagMode       = "Validation failure mode: fail-fast or collect"
	MsgFlagCollect    = "Shorthand for --mode collect"
	MsgFlagTimeout    = "Abort the walk after this long (0 disables)"
	MsgFlagRequire    = "Require at least one file in any of these categories instead of gql/graphql models"
	MsgFlagRequireAll = "Require at least one file in each of these categories"
	MsgFlagAcceptAll  = "Accept every directory holding a marker file"
	MsgFlagManDir     = "Directory to write man pages into"
)

// Output messages
const (
	MsgVersionFormat = "durp version %s\n  commit: %s\n  built:  %s\n"
	MsgDetectFormat  = "%s\t%s\n"
	MsgCheckOK       = "%s is a valid component\n"
	MsgManWritten    = "Man pages written to %s\n"
)

// MsgUsageTemplate is cobra's usage template with bold section headers
const MsgUsageTemplate = `{{boldUpper "usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if .HasExample}}

{{boldUpper "examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "additional commands"}}:{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "global flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
