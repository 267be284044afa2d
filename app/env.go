package app

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rehabtrack/rehab/internal/config"
	"github.com/rehabtrack/rehab/internal/exercisedb"
	"github.com/rehabtrack/rehab/internal/osutil"
	"github.com/rehabtrack/rehab/internal/pathutil"
	"github.com/rehabtrack/rehab/internal/program"
	"github.com/rehabtrack/rehab/internal/ui"
	"github.com/rehabtrack/rehab/store"
	"github.com/rehabtrack/rehab/tracker"
)

const (
	logMaxSizeMB  = 1
	logMaxBackups = 3
)

// env is everything a command needs: settings, storage and the programme.
type env struct {
	cfg    *config.Config
	client *store.Client
	logs   *store.Logs
	prog   *program.Program
	logger *lumberjack.Logger
	clock  func() time.Time
	now    time.Time
}

// loadConfig reads the config file, prompting for first-run choices when a
// user is at the terminal, and applies flag overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	var opts []config.Option

	if osutil.Interactive() {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
		config.WithSystemPaths(
			configPath,
			pathutil.DBFilePath(),
			pathutil.LogFilePath(),
		),
	)

	return config.New(opts...)
}

// newLogger returns a text logger writing to a rotated file.
func newLogger(path string, level slog.Level) (*slog.Logger, *lumberjack.Logger) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler), w
}

func setup(ctx *cli.Context) (*env, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	logger, w := newLogger(cfg.System.LogPath, cfg.Settings.Level())
	slog.SetDefault(logger)

	ui.DarkTheme = cfg.Display.DarkTheme

	client, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		_ = w.Close()
		return nil, err
	}

	e := &env{
		cfg:    cfg,
		client: client,
		logs:   store.OpenLogs(client.Slot(store.LogSlot)),
		prog: program.Default(
			program.WithBonus(cfg.Program.BonusPhase, cfg.Program.BonusQuota),
		),
		logger: w,
		clock:  time.Now,
		now:    time.Now(),
	}

	command := "tui"
	if ctx.Command != nil && ctx.Command.Name != "" {
		command = ctx.Command.Name
	}

	slog.InfoContext(
		ctx.Context,
		"starting rehab",
		slog.String("command", command),
		slog.Int("records", e.logs.Len()),
	)

	return e, nil
}

func (e *env) Close() {
	_ = e.client.Close()
	_ = e.logger.Close()
}

// state builds the tracker state from the configured start phase and any
// --phase, --session and --seed flags.
func (e *env) state() (tracker.State, error) {
	s := tracker.NewState(e.now)

	phase := e.cfg.CLI.Phase
	if phase == 0 {
		phase = max(e.cfg.Program.StartPhase, 1)
	}

	if phase > len(e.prog.Phases) {
		return s, errUnknownPhase.Fmt(phase, len(e.prog.Phases))
	}

	s = s.SelectPhase(phase - 1)

	if n := e.cfg.CLI.Session; n > 0 {
		ph := e.prog.Phase(s.Phase)
		if n > len(ph.Sessions) {
			return s, errUnknownSession.Fmt(n, ph.Name, len(ph.Sessions))
		}

		s = s.SelectSession(n - 1)
	}

	if e.cfg.CLI.HasSeed {
		s = s.Shuffle(e.cfg.CLI.Seed)
	}

	return s, nil
}

// loader returns the exercise database loader, or nil when disabled.
func (e *env) loader() *exercisedb.Loader {
	if !e.cfg.ExerciseDB.Enabled {
		return nil
	}

	db := e.cfg.ExerciseDB

	return exercisedb.NewLoader(db.URL, db.ImageBase, db.Timeout, db.CacheTTL, e.client)
}

// cached returns the exercise table from the cache alone, ignoring its age.
func (e *env) cached() *exercisedb.Table {
	data, _, err := e.client.ReadCache(exercisedb.CacheKey)
	if err != nil || data == nil {
		return exercisedb.NewTable()
	}

	t, err := exercisedb.Decode(data, e.cfg.ExerciseDB.ImageBase)
	if err != nil {
		slog.Warn("cached exercise database is unreadable", slog.Any("error", err))
		return exercisedb.NewTable()
	}

	return t
}

// find resolves the exercise named by the first argument.
func (e *env) find(ctx *cli.Context) (program.Exercise, *program.Phase, error) {
	id := ctx.Args().First()
	if id == "" {
		return program.Exercise{}, nil, errMissingID
	}

	ex, ph, ok := e.prog.Find(id)
	if !ok {
		return program.Exercise{}, nil, tracker.ErrUnknownExercise.Fmt(id)
	}

	return ex, ph, nil
}
