package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"homehealth-dashboard/cmd/hhdash/globals"
	"homehealth-dashboard/cmd/hhdash/utils"
	"homehealth-dashboard/internal/api"
	"homehealth-dashboard/internal/auth"
	"homehealth-dashboard/internal/config"
	"homehealth-dashboard/lib/osutil"
	"homehealth-dashboard/lib/restyutil"
	"homehealth-dashboard/lib/session"
	sessiondb "homehealth-dashboard/lib/session/db"
	"homehealth-dashboard/lib/telemetry"

	"github.com/spf13/cobra"
)

// commands with this annotation run without verifying the stored session
// first.
const skipRestore = "hhdash.skip-restore"

var (
	configPath string
	verbose    bool
	apiURL     string
)

var cleanup []func()

var rootCmd = &cobra.Command{
	Use:               "hhdash",
	Short:             "hhdash is a terminal dashboard for the home health analytics api.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default: hhdash.json5 in this or any parent directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output and dump http exchanges to .dev/resty")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "base url of the analytics api")
}

func setup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	cfg.Verbose = cfg.Verbose || verbose
	telemetry.InitSlog(os.Stderr, cfg.Verbose)

	t, err := telemetry.SetupFromEnv(ctx, "hhdash")
	if err != nil {
		slog.WarnContext(ctx, "failed to setup telemetry", "err", err)
	}
	cleanup = append(cleanup, func() {
		err := t.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to flush telemetry", "err", err)
		}
	})

	var output restyutil.InstrumentOutput
	if cfg.Verbose {
		fsOutput, err := restyutil.NewFilesystemOutput(".dev/resty")
		if err != nil {
			slog.WarnContext(ctx, "failed to create http dump directory", "err", err)
		} else {
			output = fsOutput
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(apiURL), "/")
	if baseURL == "" {
		baseURL = cfg.ResolveAPIURL(os.LookupEnv)
	}
	slog.DebugContext(ctx, "using api", "url", baseURL)
	httpClient := api.NewHTTPClient(baseURL, cfg.Timeout(), output)

	db, err := cfg.SessionDB().OpenDB(sessiondb.Schema)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	cleanup = append(cleanup, func() { db.Close() })

	authClient := api.NewAuthClient(httpClient)
	sess := auth.NewSession(session.NewSQLStore(db, cfg.Session.Namespace), authClient)
	if cmd.Annotations[skipRestore] == "" {
		err = sess.Restore(ctx)
		if err != nil {
			return err
		}
	}

	cmd.SetContext(globals.Set(ctx, &globals.Value{
		Config:  cfg,
		BaseURL: baseURL,
		Auth:    authClient,
		Client:  api.NewClient(httpClient, sess),
		Session: sess,
	}))
	return nil
}

func Execute() {
	ctx, stop := osutil.SignalContext(context.Background())
	err := rootCmd.ExecuteContext(ctx)
	for i := len(cleanup) - 1; i >= 0; i-- {
		cleanup[i]()
	}
	stop()

	if err != nil {
		utils.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
