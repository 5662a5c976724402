package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

type State int

const (
	StateRunning State = iota + 1
	StateExiting
)

const (
	unrecognizedChoice = "Unrecognized choice!"

	greeting = "\n\n*******************************************************\n" +
		"              User Interface      	               \n" +
		"*******************************************************\n"
)

type Console struct {
	Config  *config.Config
	Menu    *Menu
	Session *Session
	State   State
	otel    otel.Otel
}

func New(cfg *config.Config, menu *Menu, session *Session, otl otel.Otel) *Console {
	return &Console{
		Config:  cfg,
		Menu:    menu,
		Session: session,
		otel:    otl,
	}
}

// Greeting prints the banner shown once at startup.
func Greeting(w io.Writer) {
	fmt.Fprint(w, greeting+"\n")
}

// Run loops over render, read and dispatch until the exit code is chosen
// or the input is closed.
func (c *Console) Run(ctx context.Context) {
	c.State = StateRunning

	log.Debug().Int("operations", c.Menu.Len()).Msg("Console started")

	for c.State == StateRunning {
		c.Menu.Render(c.Session.Out)

		choice, err := c.Session.ReadChoice()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.ErrorWithStack(err)
			}

			log.Debug().Msg("Console input closed")
			c.State = StateExiting

			break
		}

		c.dispatch(ctx, choice)
	}

	log.Debug().Msg("Console stopped")
}

func (c *Console) dispatch(ctx context.Context, choice int) {
	if choice == ExitCode {
		c.State = StateExiting

		return
	}

	op, ok := c.Menu.Lookup(choice)
	if !ok {
		fmt.Fprintln(c.Session.Out, unrecognizedChoice)

		return
	}

	ctx, scope := c.otel.NewScope(ctx, constant.OtelConsoleScopeName, constant.OtelConsoleScopeName+".Dispatch")
	defer scope.End()

	scope.SetAttribute("choice", choice)

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("operation %d panicked: %v", choice, r)

			scope.TraceError(err)
			logger.ErrorWithStack(err)
		}
	}()

	op.Run(ctx, c.Session)
}

// HandleSignals runs shutdown and exits once SIGINT or SIGTERM arrives.
// The blocking console read cannot be interrupted, so the process ends here.
func (c *Console) HandleSignals(shutdown func()) {
	signalCh := make(chan os.Signal, 1)

	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	go c.respondToSignal(signalCh, shutdown)
}

func (c *Console) respondToSignal(done chan os.Signal, shutdown func()) {
	sig := <-done

	defer os.Exit(0)

	c.closeSession(sig, shutdown)
}

// closeSession runs on the signal goroutine, so it must not touch State.
func (c *Console) closeSession(sig os.Signal, shutdown func()) {
	if c.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Str("signal", sig.String()).Msg("Received signal. Shutting down now.")
	} else {
		log.Info().Str("signal", sig.String()).Msg("Received signal. Closing the session.")
	}

	fmt.Fprintln(c.Session.Out)
	shutdown()
}
