package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"

	"chosenoffset.com/avatarpal/internal/app"
	"chosenoffset.com/avatarpal/internal/avatar"
	"chosenoffset.com/avatarpal/internal/config"
	"chosenoffset.com/avatarpal/internal/logging"
	"chosenoffset.com/avatarpal/internal/phrases"
	"chosenoffset.com/avatarpal/internal/phrases/watch"
	"chosenoffset.com/avatarpal/internal/placeholders"
	ebitenrender "chosenoffset.com/avatarpal/internal/render/ebiten"
	"chosenoffset.com/avatarpal/internal/ui"
	"chosenoffset.com/avatarpal/internal/voice"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Until the config is read we only have a console logger.
	boot, _, _ := logging.New(logging.Options{})

	cfg, err := config.Load(config.ConfigFile)
	if err != nil {
		boot.Warn().Err(err).Str("path", config.ConfigFile).Msg("Failed to read config, using defaults")
		cfg = config.Default()
	}

	logger, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		boot.Warn().Err(err).Msg("Bad logging settings, using defaults")
		logger, closeLog, _ = logging.New(logging.Options{File: cfg.LogFile})
	}
	defer closeLog()

	logger.Info().Str("version", config.AppVersion).Msg("Starting avatar pal")

	pm, err := phrases.Open(config.PhrasesFile, logging.Component(logger, "phrases"),
		phrases.WithMaxLanguages(config.MaxLanguages))
	if err != nil {
		logger.Error().Err(err).Str("path", config.PhrasesFile).Msg("Failed to load phrases")
		return err
	}
	if err := cfg.SetLanguage(cfg.Language, pm.ListLanguages()); err != nil {
		logger.Warn().Err(err).Str("lang", cfg.Language).Msg("Configured language has no phrases")
	}

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create renderer")
		return err
	}
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	img, err := loader.LoadImage(config.AvatarImage)
	if err != nil {
		logger.Warn().Err(err).Str("path", config.AvatarImage).Msg("Avatar image missing, using placeholder")
		img = ebitenrender.NewImageFromImage(placeholders.CreateAvatar(placeholders.AvatarSize))
	}
	av := avatar.New(img, config.WindowWidth, config.WindowHeight)
	defer av.Dispose()
	av.Show()

	speaker := voice.New(audio.NewContext(voice.SampleRate), config.VoiceDir, cfg.Volume,
		logging.Component(logger, "voice"))
	defer speaker.Stop()

	panel := ui.New(renderer, cfg, pm, av, logging.Component(logger, "ui"),
		config.WindowWidth, config.WindowHeight)
	panel.SetVolumeSink(speaker)

	game := app.New(renderer, inputMgr, engine, cfg, pm, av, panel, logger)
	game.SetSpeaker(speaker)

	if cfg.HotReload {
		w, err := watch.New(config.PhrasesFile, logging.Component(logger, "watch"))
		if err != nil {
			logger.Warn().Err(err).Msg("Phrase hot reload disabled")
		} else {
			defer w.Close()
			game.SetChangeSource(w)
		}
	}

	// Set up the window
	engine.SetWindowSize(config.WindowWidth, config.WindowHeight)
	engine.SetWindowTitle(config.WindowTitle)
	engine.SetWindowResizable(false)
	engine.SetTPS(config.TPS)

	runErr := engine.RunGame(game)
	if runErr != nil {
		logger.Error().Err(runErr).Msg("Game loop stopped")
	}

	saveConfig(cfg, logger)
	return runErr
}

// saveConfig persists whatever the user changed, even after a failed run.
func saveConfig(cfg *config.Config, logger zerolog.Logger) {
	if err := cfg.Save(); err != nil {
		logger.Error().Err(err).Str("path", cfg.Path()).Msg("Failed to save config")
		return
	}
	logger.Info().Str("path", cfg.Path()).Msg("Config saved")
}
