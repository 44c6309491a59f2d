// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/logger"
)

var ErrNoAdapter = errors.New("blog adapter is not set")

type App struct {
	blog     adapter.BlogAdapter
	sessions SessionStore
	out      io.Writer

	logger *logger.Logger
}

// NewApp creates the command-line client. Command output goes to out.
func NewApp(blog adapter.BlogAdapter, sessions SessionStore, out io.Writer, logger *logger.Logger) (*App, error) {
	if blog == nil {
		return nil, ErrNoAdapter
	}

	return &App{blog: blog, sessions: sessions, out: out, logger: logger}, nil
}

// Run restores the saved session, executes the command given by args and
// saves the session again if the command changed it.
func (a *App) Run(ctx context.Context, args []string) error {
	saved, err := a.sessions.Load()
	if err != nil {
		return err
	}
	a.blog.SetSessionToken(saved)

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.out)

	runErr := root.ExecuteContext(ctx)

	if current := a.blog.SessionToken(); current != saved {
		if err = a.sessions.Save(current); err != nil {
			a.logger.Err(err).Msg("error saving session")
			return errors.Join(runErr, err)
		}
		a.logger.Debug().Bool("logged_in", current != "").Msg("session updated")
	}

	if runErr != nil {
		return fmt.Errorf("%s: %w", root.Name(), runErr)
	}
	return nil
}
