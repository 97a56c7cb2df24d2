package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nehal404/portfolio-chatbot-backend/pkg/logger"
	"github.com/nehal404/portfolio-chatbot-backend/server"
)

const version = "1.0.0"

const rootLongDesc = `Backend for the portfolio chatbot.

Serves POST /api/chat (blocking or streamed completions against an
OpenAI-compatible provider) and GET /api/health. The upstream credential
is read from the GROQ_API_KEY environment variable; a .env file in the
working directory is loaded if present.

Examples:
  chatbot
  chatbot --listen :3000 --stream
  chatbot --config chatbot.toml --persona-file persona.txt --debug`

const rootShortDesc = "Run the portfolio chatbot backend"

type serveCommander struct {
	configPath  string
	envFile     string
	listenAddr  string
	environment string
	upstreamURL string
	model       string
	personaFile string
	stream      bool
	debug       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:           "chatbot",
		Short:         rootShortDesc,
		Long:          rootLongDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd)
		},
	}

	cmder.bindFlags(cmd)

	return cmd
}

func (c *serveCommander) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.configPath, "config", "c", "", "Path to a TOML config file")
	cmd.Flags().StringVar(&c.envFile, "env-file", "", "Path to a .env file (default: ./.env if present)")
	cmd.Flags().StringVarP(&c.listenAddr, "listen", "l", "", "Address to listen on (default :8080)")
	cmd.Flags().StringVar(&c.environment, "environment", "", `"production" or "development"`)
	cmd.Flags().StringVar(&c.upstreamURL, "upstream", "", "Completion provider base URL")
	cmd.Flags().StringVar(&c.model, "model", "", "Model identifier")
	cmd.Flags().StringVar(&c.personaFile, "persona-file", "", "File holding the persona system prompt")
	cmd.Flags().BoolVar(&c.stream, "stream", false, "Stream responses by default")
	cmd.Flags().BoolVar(&c.debug, "debug", false, "Enable debug logging and pprof endpoints")
}

func (c *serveCommander) run(ctx context.Context, cmd *cobra.Command) error {
	config, err := c.buildConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(config.Environment, config.Debug)
	defer log.Sync()

	srv, err := server.New(config, log)
	if err != nil {
		log.Error("failed to create server", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server failed", zap.Error(err))
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		return srv.Shutdown()
	}
}

// buildConfig layers configuration: defaults < TOML file < environment
// < flags. The credential only ever comes from the environment.
func (c *serveCommander) buildConfig(cmd *cobra.Command) (server.Config, error) {
	// Load .env before reading any environment variables. A missing
	// default .env is fine; an explicitly named file is not.
	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil {
			return server.Config{}, err
		}
	} else {
		_ = godotenv.Load()
	}

	var config server.Config
	if c.configPath != "" {
		if _, err := toml.DecodeFile(c.configPath, &config); err != nil {
			return server.Config{}, err
		}
	}

	config.APIKey = os.Getenv("GROQ_API_KEY")
	if config.Environment == "" {
		config.Environment = os.Getenv("APP_ENV")
	}
	if config.ListenAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			config.ListenAddr = ":" + port
		}
	}

	if cmd.Flags().Changed("listen") {
		config.ListenAddr = c.listenAddr
	}
	if cmd.Flags().Changed("environment") {
		config.Environment = c.environment
	}
	if cmd.Flags().Changed("upstream") {
		config.UpstreamURL = c.upstreamURL
	}
	if cmd.Flags().Changed("model") {
		config.Model = c.model
	}
	if cmd.Flags().Changed("persona-file") {
		config.PersonaFile = c.personaFile
	}
	if cmd.Flags().Changed("stream") {
		config.StreamByDefault = c.stream
	}

	if config.Persona == "" && config.PersonaFile == "" {
		config.Persona = defaultPersona
	}

	config.Version = version
	config.Debug = c.debug

	return config, nil
}
