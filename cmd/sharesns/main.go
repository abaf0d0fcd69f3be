package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantmind-br/sharesns/internal/app"
	"github.com/quantmind-br/sharesns/internal/cache"
	"github.com/quantmind-br/sharesns/internal/clipboard"
	"github.com/quantmind-br/sharesns/internal/config"
	"github.com/quantmind-br/sharesns/internal/renderer"
	"github.com/quantmind-br/sharesns/internal/utils"
	"github.com/quantmind-br/sharesns/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// cliOptions holds flags that are not bound to viper
type cliOptions struct {
	cfgFile   string
	verbose   bool
	data      string
	printOnly bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "sharesns <type> [page-url]",
		Short: "Share a page to a social destination",
		Long: `sharesns reads a page's Open Graph metadata and shares it to Facebook,
Twitter, Naver, Band, KakaoTalk, KakaoStory, LinkedIn, Pinterest, SMS or
the clipboard.

Share URLs open in the default browser. Kakao destinations load the Kakao
JavaScript SDK in a Chrome tab and need kakao.app_key.`,
		Example: `  sharesns facebook https://example.com/post
  sharesns copyurl https://example.com/post
  sharesns twitter https://example.com/post --data '{"twitter_text":"Read this"}'
  sharesns kakao https://example.com/post --kakao-key YOUR_APP_KEY
  sharesns sms https://example.com/post --print --platform ios`,
		Version: version.Short(),
		Args:    cobra.RangeArgs(1, 2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.cfgFile != "" {
				viper.SetConfigFile(opts.cfgFile)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ~/.sharesns/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("engine", config.DefaultEngine, "Engine: system or browser")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultFetchTimeout, "Page fetch timeout")
	rootCmd.PersistentFlags().String("user-agent", "", "Custom User-Agent")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Disable the Open Graph cache")

	// Share flags
	rootCmd.Flags().StringVarP(&opts.data, "data", "d", "", "JSON object overriding Open Graph fields")
	rootCmd.Flags().BoolVarP(&opts.printOnly, "print", "p", false, "Print the share target instead of opening it")
	rootCmd.Flags().String("kakao-key", "", "Kakao JavaScript app key")
	rootCmd.Flags().String("platform", config.DefaultPlatform, "Platform: auto, ios, android or desktop")
	rootCmd.Flags().Bool("headed", false, "Show the Chrome window (browser engine)")

	// Bind flags to viper
	_ = viper.BindPFlag("engine", rootCmd.PersistentFlags().Lookup("engine"))
	_ = viper.BindPFlag("fetch.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("fetch.user_agent", rootCmd.PersistentFlags().Lookup("user-agent"))
	_ = viper.BindPFlag("kakao.app_key", rootCmd.Flags().Lookup("kakao-key"))
	_ = viper.BindPFlag("platform", rootCmd.Flags().Lookup("platform"))

	// Add subcommands
	rootCmd.AddCommand(newTypesCmd())
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCacheCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig loads configuration and applies flags viper cannot express
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		cfg.Cache.Enabled = false
	}
	if f := cmd.Flags().Lookup("headed"); f != nil && f.Changed {
		cfg.Browser.Headless = false
	}
	return cfg, nil
}

// signalContext is canceled on SIGINT or SIGTERM
func signalContext(log *utils.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			log.Info().Msg("Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

func newOrchestrator(cmd *cobra.Command, opts *cliOptions) (*app.Orchestrator, *utils.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	logLevel := cfg.Logging.Level
	if opts.verbose {
		logLevel = "debug"
	}
	log := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: opts.verbose,
	})

	orch, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:  cfg,
		Verbose: opts.verbose,
		Output:  cmd.OutOrStdout(),
		Logger:  log,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}
	return orch, log, nil
}

func run(cmd *cobra.Command, args []string, opts *cliOptions) error {
	orch, log, err := newOrchestrator(cmd, opts)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	runOpts := app.RunOptions{
		Type:      args[0],
		Overrides: opts.data,
		Print:     opts.printOnly,
	}
	if len(args) > 1 {
		runOpts.PageURL = args[1]
	}
	if runOpts.PageURL == "" && runOpts.Overrides == "" {
		return fmt.Errorf("a page URL or --data is required")
	}

	if orch.EngineFor(runOpts.Type, runOpts.Print) == app.EngineBrowser && !opts.verbose {
		spinner := utils.NewSpinner(cmd.ErrOrStderr(), utils.DescLaunching)
		defer func() { _ = spinner.Finish() }()
	}

	return orch.Run(ctx, runOpts)
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported share types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, err := app.NewOrchestrator(app.OrchestratorOptions{
				Config: config.Default(),
				Output: cmd.OutOrStdout(),
				Logger: utils.NewNopLogger(),
			})
			if err != nil {
				return err
			}
			for _, t := range orch.Types() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}

func newInspectCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <page-url>",
		Short: "Print the Open Graph data a share would use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch, log, err := newOrchestrator(cmd, opts)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(log)
			defer cancel()

			og, err := orch.Inspect(ctx, args[0])
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(map[string]string(og))
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigFilePath()
			if len(args) == 1 {
				path = args[0]
			}
			force, _ := cmd.Flags().GetBool("force")

			if err := config.Save(config.Default(), path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}

func newCacheCmd() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the Open Graph cache",
	}

	openCache := func(cmd *cobra.Command) (*cache.BadgerCache, string, error) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return nil, "", err
		}
		dir := utils.ExpandPath(cfg.Cache.Directory)
		c, err := cache.NewBadgerCache(cache.Options{Directory: dir})
		if err != nil {
			return nil, dir, fmt.Errorf("failed to open cache %s: %w", dir, err)
		}
		return c, dir, nil
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show the cache location and entry count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, dir, err := openCache(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Directory: %s\nEntries: %d\n", dir, c.Size())
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := openCache(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			n := c.Size()
			if err := c.Clear(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", n)
			return nil
		},
	}

	cacheCmd.AddCommand(infoCmd, clearCmd)
	return cacheCmd
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check system dependencies",
		Long:  "Verifies that Chrome, the clipboard and the configuration are usable.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Checking system dependencies...")
			allPassed := true

			fmt.Fprint(out, "  Chrome/Chromium: ")
			if path, ok := renderer.GetBrowserPath(); ok {
				fmt.Fprintf(out, "OK (%s)\n", path)
			} else {
				fmt.Fprintln(out, "NOT FOUND (kakao and the browser engine will be unavailable)")
			}

			fmt.Fprint(out, "  Clipboard: ")
			if checkClipboard() {
				fmt.Fprintln(out, "OK")
			} else {
				fmt.Fprintln(out, "FAILED (copyurl will only print the URL)")
				allPassed = false
			}

			fmt.Fprint(out, "  Config file: ")
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(out, "WARN (%v)\n", err)
				cfg = config.Default()
			} else {
				fmt.Fprintln(out, "OK")
			}

			fmt.Fprint(out, "  Kakao app key: ")
			if cfg.Kakao.AppKey != "" {
				fmt.Fprintln(out, "OK")
			} else {
				fmt.Fprintln(out, "NOT SET (kakao and kakaostory need kakao.app_key)")
			}

			fmt.Fprint(out, "  Cache directory: ")
			cacheDir := utils.ExpandPath(cfg.Cache.Directory)
			if checkCacheDir(cacheDir) {
				fmt.Fprintf(out, "OK (%s)\n", cacheDir)
			} else {
				fmt.Fprintln(out, "WARN (will be created on first use)")
			}

			fmt.Fprintln(out)
			if allPassed {
				fmt.Fprintln(out, "All critical checks passed!")
			} else {
				fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
			}
			return nil
		},
	}
}

// Dependencies for testing
var (
	clipboardAvailable = func() bool { return clipboard.SystemClipboard{}.Available() }
	osStat             = os.Stat
)

// checkClipboard reports whether the OS clipboard can be written
func checkClipboard() bool {
	return clipboardAvailable()
}

// checkCacheDir checks if the cache directory exists
func checkCacheDir(path string) bool {
	info, err := osStat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
