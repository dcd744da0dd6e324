package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/dshills/lineedit/internal/config"
	"github.com/dshills/lineedit/internal/input"
	"github.com/dshills/lineedit/internal/script"
	"github.com/dshills/lineedit/internal/session"
)

// pipeline runs one edit pass: open, replay keys, run the script, write.
type pipeline struct {
	opts   options
	cfg    *config.Config
	log    zerolog.Logger
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs
}

func (p *pipeline) fileSystem() afero.Fs {
	if p.fs == nil {
		p.fs = afero.NewOsFs()
	}
	return p.fs
}

func (p *pipeline) keymap() (*input.Keymap, error) {
	km := input.DefaultKeymap()
	if err := km.Apply(p.cfg.Keys.Bindings); err != nil {
		return nil, fmt.Errorf("keys.bindings: %w", err)
	}
	return km, nil
}

func (p *pipeline) listKeys() error {
	km, err := p.keymap()
	if err != nil {
		return err
	}
	for _, b := range km.Bindings() {
		fmt.Fprintf(p.stdout, "%-16s %s\n", b.Chord, b.Action)
	}
	return nil
}

func (p *pipeline) runOnce(ctx context.Context) error {
	km, err := p.keymap()
	if err != nil {
		return err
	}
	chords, err := input.ParseKeys(p.opts.Keys)
	if err != nil {
		return fmt.Errorf("-keys: %w", err)
	}

	sess, err := session.FromConfig(p.cfg,
		session.WithFS(p.fileSystem()),
		session.WithLogger(p.log),
	)
	if err != nil {
		return err
	}

	if p.opts.Input != "" {
		if err := sess.Open(p.opts.Input); err != nil {
			return err
		}
	}

	if len(chords) > 0 {
		h := input.NewHandler(sess, input.WithKeymap(km), input.WithLogger(p.log))
		if err := h.Replay(chords); err != nil {
			return err
		}
	}

	if p.opts.ScriptPath != "" {
		r := script.New(sess,
			script.WithTimeout(p.cfg.Script.Timeout.Std()),
			script.WithOutput(p.stderr),
			script.WithFS(p.fileSystem()),
			script.WithLogger(p.log),
		)
		defer r.Close()

		if err := r.RunFile(ctx, p.opts.ScriptPath); err != nil {
			return err
		}
	}

	return p.write(sess)
}

func (p *pipeline) write(sess *session.Session) error {
	switch {
	case p.opts.OutputPath == "-", p.opts.OutputPath == "" && p.opts.Input == "":
		_, err := io.WriteString(p.stdout, sess.Text())
		return err
	case p.opts.OutputPath != "":
		return sess.SaveAs(p.opts.OutputPath)
	case sess.Modified():
		return sess.Save()
	default:
		p.log.Info().Str("path", sess.Path()).Msg("unchanged")
		return nil
	}
}

// watch runs once, then again after every change to the input file until
// ctx is done. Failed passes are logged and do not stop the loop.
func (p *pipeline) watch(ctx context.Context) error {
	if err := p.runOnce(ctx); err != nil {
		return err
	}

	w, err := session.NewWatcher(p.opts.Input, session.WithWatcherLogger(p.log))
	if err != nil {
		return err
	}
	defer w.Close()

	p.log.Info().Str("path", w.Path()).Msg("watching")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			p.log.Debug().Str("path", ev.Path).Stringer("op", ev.Op).Msg("changed")
			if err := p.runOnce(ctx); err != nil {
				p.log.Error().Err(err).Msg("edit failed")
			}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			p.log.Warn().Err(err).Msg("watch error")
		}
	}
}
