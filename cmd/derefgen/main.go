package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calumari/deref/internal/generator"
)

const (
	flagType        = "type"
	flagOutput      = "output"
	flagDir         = "dir"
	flagConfig      = "config"
	flagRead        = "read"
	flagWrite       = "write"
	flagStrict      = "strict"
	flagDebug       = "debug"
	flagConcurrency = "concurrency"
)

// deriveVersion inspects build info for module version or vcs revision.
// preference order: module semantic version -> short commit hash -> "devel".
func deriveVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
		var revision string
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				revision = s.Value
				break
			}
		}
		if len(revision) >= 12 { // short hash for readability
			return revision[:12]
		}
		if revision != "" {
			return revision
		}
	}
	return "devel"
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derefgen [flags]",
		Short: "Generate delegation accessors for structs wrapping a tagged field",
		Long: `derefgen finds the field tagged ` + "`deref:\"false\"` or `deref:\"true\"`" + ` in each selected
struct and generates a read accessor returning it. With "true" a second accessor
returning a pointer to the field is generated as well.`,
		Example: `  //go:generate derefgen --type=Wrapper
  derefgen --type=Wrapper,Box --output=deref_gen.go
  derefgen --config=derefgen.yaml --loglevel=debug`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}

	flags := cmd.Flags()
	flags.StringSlice(flagType, nil, "struct type names to process (default: every struct with a tagged field)")
	flags.String(flagOutput, "deref_gen.go", "output filename for generated code")
	flags.String(flagDir, ".", "directory of the package to scan")
	flags.String(flagConfig, "", "YAML file with generation settings; explicit flags take precedence")
	flags.String(flagRead, "Deref", "name of the generated read accessor")
	flags.String(flagWrite, "DerefMut", "name of the generated write accessor")
	flags.Bool(flagStrict, false, "fail when a struct has more than one tagged field")
	flags.Bool(flagDebug, false, "annotate generated methods with their source field and dump models at debug level")
	flags.Int(flagConcurrency, 0, "maximum number of structs analyzed at once (0 means unbounded)")
	RegisterLoggingFlags(cmd.PersistentFlags())
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	logger, err := GetBaseLogger(cmd)
	if err != nil {
		return err
	}
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}
	cfg.Logger = logger
	cfg.Version = deriveVersion()
	cfg.Command = displayCommand(cfg)
	return generator.Run(cmd.Context(), cfg)
}

// configFromFlags starts from the config file, when given, and lays every
// explicitly set flag over it.
func configFromFlags(cmd *cobra.Command) (generator.Config, error) {
	flags := cmd.Flags()
	var cfg generator.Config
	path, _ := flags.GetString(flagConfig)
	if path != "" {
		loaded, err := generator.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	var err error
	set := func(name string, apply func() error) {
		// without a config file the flag defaults apply as well
		if err != nil || (path != "" && !flags.Changed(name)) {
			return
		}
		err = apply()
	}
	set(flagType, func() (e error) {
		var types []string
		types, e = flags.GetStringSlice(flagType)
		cfg.Types = trimAll(types)
		return e
	})
	set(flagOutput, func() (e error) { cfg.Output, e = flags.GetString(flagOutput); return e })
	set(flagDir, func() (e error) { cfg.Dir, e = flags.GetString(flagDir); return e })
	set(flagRead, func() (e error) { cfg.ReadMethod, e = flags.GetString(flagRead); return e })
	set(flagWrite, func() (e error) { cfg.WriteMethod, e = flags.GetString(flagWrite); return e })
	set(flagStrict, func() (e error) { cfg.Strict, e = flags.GetBool(flagStrict); return e })
	set(flagDebug, func() (e error) { cfg.Debug, e = flags.GetBool(flagDebug); return e })
	set(flagConcurrency, func() (e error) { cfg.Concurrency, e = flags.GetInt(flagConcurrency); return e })
	return cfg, err
}

func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// displayCommand builds a simplified canonical command representation
// instead of raw argv (which may include build cache paths).
func displayCommand(cfg generator.Config) string {
	parts := []string{"derefgen"}
	if len(cfg.Types) > 0 {
		parts = append(parts, "--type="+strings.Join(cfg.Types, ","))
	}
	if cfg.Output != "" && cfg.Output != "deref_gen.go" {
		parts = append(parts, "--output="+cfg.Output)
	}
	if cfg.Dir != "" && cfg.Dir != "." {
		parts = append(parts, "--dir="+cfg.Dir)
	}
	if cfg.ReadMethod != "" && cfg.ReadMethod != "Deref" {
		parts = append(parts, "--read="+cfg.ReadMethod)
	}
	if cfg.WriteMethod != "" && cfg.WriteMethod != "DerefMut" {
		parts = append(parts, "--write="+cfg.WriteMethod)
	}
	if cfg.Strict {
		parts = append(parts, "--strict")
	}
	if cfg.Debug {
		parts = append(parts, "--debug")
	}
	if cfg.Concurrency > 0 {
		parts = append(parts, "--concurrency="+strconv.Itoa(cfg.Concurrency))
	}
	return strings.Join(parts, " ")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "derefgen: %v\n", err)
		os.Exit(1)
	}
}
