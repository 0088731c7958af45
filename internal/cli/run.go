package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/user"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"vfsh/config"
	"vfsh/internal/tui"
	"vfsh/internal/util"
	"vfsh/loader"
	"vfsh/shell"
	"vfsh/vfs"
)

// Env overrides for the session identity
const (
	envUser = "VFSH_USER"
	envHost = "VFSH_HOST"
)

func runShell(cmd *cobra.Command, args []string) error {
	// A .env next to the binary may carry the VFSH_* overrides
	_ = godotenv.Load()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("cli")

	loader.RegisterBuiltins()

	username, hostname := resolveIdentity(cfg)

	banner := []string{
		"--- Startup parameters ---",
		"VFS      : " + orUnset(cfg.VFSSource),
		"Script   : " + orUnset(cfg.Script),
		"--------------------------",
	}

	tree, loadNote := buildTree(cfg.VFSSource, username)
	if loadNote != "" {
		banner = append(banner, loadNote)
	}

	var script []string
	if cfg.Script != "" {
		script, err = shell.LoadScript(cfg.Script)
		if err != nil {
			banner = append(banner, "script error: "+err.Error())
			script = nil
		}
	}

	sh := shell.New(tree, username, hostname)
	sh.SetPromptTemplate(cfg.Prompt)
	logger.Info().Str("user", username).Str("host", hostname).Msg("Session starting")

	if tui.IsInteractive() {
		return tui.Run(sh, banner, script, cfg.HistorySize)
	}
	return runPlain(sh, banner, script)
}

// resolveConfig layers defaults, the optional config file, and command
// line flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if flagConfig != "" {
		override, err := config.LoadConfigOverrideFile(flagConfig)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cfg.Merge(override)
	}

	if cmd.Flags().Changed("vfs") {
		cfg.VFSSource = flagVFS
	}
	if cmd.Flags().Changed("script") {
		cfg.Script = flagScript
	}
	if cmd.Flags().Changed("verbose") {
		cfg.LogLvl = config.LevelForVerbosity(flagVerbose)
	}
	return cfg, nil
}

// resolveIdentity picks the session username and hostname: config wins,
// then VFSH_* env, then the host OS.
func resolveIdentity(cfg *config.Config) (username, hostname string) {
	username = cfg.Username
	if username == "" {
		username = os.Getenv(envUser)
	}
	if username == "" {
		if u, err := user.Current(); err == nil {
			username = u.Username
		} else {
			username = "user"
		}
	}

	hostname = cfg.Hostname
	if hostname == "" {
		hostname = os.Getenv(envHost)
	}
	if hostname == "" {
		if h, err := os.Hostname(); err == nil {
			hostname = h
		} else {
			hostname = "localhost"
		}
	}
	return username, hostname
}

// buildTree loads the seed source, falling back to the built-in default
// tree when no source is given or loading fails. The returned note, if
// any, belongs in the startup banner.
func buildTree(source, username string) (*vfs.Tree, string) {
	if source == "" {
		return vfs.DefaultTree(username), ""
	}
	tree, err := loader.Open(source)
	if err != nil {
		logger := util.GetLogger("cli")
		logger.Warn().Err(err).Str("source", source).Msg("VFS load failed")
		return vfs.DefaultTree(username), "VFS load error: " + err.Error() + " (continuing with the default tree)"
	}
	return tree, ""
}

// runPlain is the non-terminal front-end: banner and script first, then
// every stdin line through the shell, command echo included, until EOF
// or exit.
func runPlain(sh *shell.Shell, banner, script []string) error {
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	emit := func(line string) { fmt.Fprintln(out, line) }
	for _, l := range banner {
		emit(l)
	}
	if len(script) > 0 {
		if _, exit := sh.RunScript(script, emit); exit {
			return nil
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		emit(sh.Prompt() + line)
		res := sh.Run(line)
		if res.Output != "" {
			emit(res.Output)
		}
		if res.Exit {
			return nil
		}
		out.Flush()
	}
	return scanner.Err()
}

func orUnset(v string) string {
	if v == "" {
		return "<unset>"
	}
	return v
}
