// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package service runs a single lookup: it resolves an address, finds the points of
// interest around it and renders them onto a map.
package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/wneessen/berlin-poi/internal/geo"
	"github.com/wneessen/berlin-poi/internal/geocode"
	"github.com/wneessen/berlin-poi/internal/logger"
	"github.com/wneessen/berlin-poi/internal/poi"
	"github.com/wneessen/berlin-poi/internal/presenter"
)

// Exit codes of the command line tool.
const (
	ExitOK = iota
	ExitAddressNotFound
	ExitNoResults
	ExitGeocodingUnavailable
	ExitFailure
)

// Resolver turns an address into a coordinate.
type Resolver interface {
	Resolve(ctx context.Context, address string) (geo.Point, error)
}

// Finder looks up the points of interest around a coordinate.
type Finder interface {
	Find(ctx context.Context, origin geo.Point, radius float64) ([]poi.PointOfInterest, error)
}

// Presenter renders the result and returns the location of the artifact.
type Presenter interface {
	Render(req presenter.Request) (string, error)
}

// Outcome is the result of a run. Fields are filled as far as the run got.
type Outcome struct {
	State        State
	Address      string
	Origin       geo.Point
	POIs         []poi.PointOfInterest
	ArtifactPath string
}

type Service struct {
	resolver  Resolver
	finder    Finder
	presenter Presenter
	logger    *logger.Logger
	radius    float64
	progress  Progress
	summary   *summary
}

// Option configures optional parts of a Service.
type Option func(*Service)

// WithOutput sets the writer the console summary is written to. Defaults to os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(s *Service) {
		s.summary = newSummary(out)
	}
}

// WithProgress enables progress reporting.
func WithProgress(progress Progress) Option {
	return func(s *Service) {
		s.progress = progress
	}
}

func New(resolver Resolver, finder Finder, pres Presenter, radius float64, log *logger.Logger,
	opts ...Option,
) *Service {
	service := &Service{
		resolver:  resolver,
		finder:    finder,
		presenter: pres,
		logger:    log,
		radius:    radius,
	}
	for _, opt := range opts {
		opt(service)
	}
	if service.summary == nil {
		service.summary = newSummary(os.Stdout)
	}
	return service
}

// Run performs one lookup for address. On failure the returned error is a *StageError
// naming the stage that failed and the returned Outcome is in the Aborted state.
func (s *Service) Run(ctx context.Context, address string) (Outcome, error) {
	outcome := Outcome{State: AwaitingInput, Address: address}
	defer s.finishProgress()

	s.transition(&outcome, Resolving)
	origin, err := s.resolver.Resolve(ctx, address)
	if err != nil {
		return s.abort(outcome, interrupted(ctx, err))
	}
	outcome.Origin = origin
	s.print(func() { s.summary.coordinates(address, origin) })

	s.transition(&outcome, Querying)
	pois, err := s.finder.Find(ctx, origin, s.radius)
	switch {
	case err == nil:
	case errors.Is(err, poi.ErrQueryFailed) && ctx.Err() == nil:
		s.logger.Warn("points of interest query failed, continuing without results", logger.Err(err))
	default:
		return s.abort(outcome, interrupted(ctx, err))
	}
	outcome.POIs = pois
	if len(pois) == 0 {
		return s.abort(outcome, ErrNoResultsFound)
	}
	s.print(func() { s.summary.results(pois, s.radius) })

	s.transition(&outcome, Presenting)
	path, err := s.presenter.Render(presenter.Request{
		Origin: origin,
		Label:  address,
		POIs:   pois,
		Radius: s.radius,
	})
	if err != nil {
		return s.abort(outcome, err)
	}
	outcome.ArtifactPath = path

	s.transition(&outcome, Done)
	s.print(func() { s.summary.saved(path) })
	return outcome, nil
}

// interrupted prefers the context error over err once the run was cancelled.
func interrupted(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

func (s *Service) transition(outcome *Outcome, next State) {
	s.logger.Debug("state transition", slog.String("from", outcome.State.String()),
		slog.String("to", next.String()))
	if s.progress != nil && outcome.State != AwaitingInput {
		if err := s.progress.Add(1); err != nil {
			s.logger.Debug("failed to update progress", logger.Err(err))
		}
	}
	outcome.State = next
	if s.progress != nil {
		s.progress.Describe(next.String())
	}
}

func (s *Service) abort(outcome Outcome, err error) (Outcome, error) {
	stageErr := &StageError{Stage: outcome.State, Err: err}
	s.logger.Debug("run aborted", slog.String("stage", outcome.State.String()), logger.Err(err))

	s.print(func() {
		switch {
		case errors.Is(err, geocode.ErrAddressNotFound):
			s.summary.addressNotFound()
		case errors.Is(err, ErrNoResultsFound):
			s.summary.noResults(s.radius)
		default:
			s.summary.failure(outcome.State, err)
		}
	})
	outcome.State = Aborted
	return outcome, stageErr
}

// print writes console output without interfering with a progress bar.
func (s *Service) print(fn func()) {
	if s.progress != nil {
		if err := s.progress.Clear(); err != nil {
			s.logger.Debug("failed to clear progress", logger.Err(err))
		}
	}
	fn()
}

func (s *Service) finishProgress() {
	if s.progress == nil {
		return
	}
	if err := s.progress.Finish(); err != nil {
		s.logger.Debug("failed to finish progress", logger.Err(err))
	}
}

// ExitCode maps the error returned by Run to the exit code of the command line tool.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, geocode.ErrAddressNotFound):
		return ExitAddressNotFound
	case errors.Is(err, ErrNoResultsFound):
		return ExitNoResults
	case errors.Is(err, geocode.ErrGeocodingUnavailable):
		return ExitGeocodingUnavailable
	default:
		return ExitFailure
	}
}
