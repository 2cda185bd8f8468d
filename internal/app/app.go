// Package app implements the application layer for pynix.
package app

import (
	"context"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/pynix/internal/core/domain"
	"go.trai.ch/pynix/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App orchestrates one or more generation runs: manifest in, pinned
// environment expressions out.
type App struct {
	configLoader ports.ConfigLoader
	lockReader   ports.LockReader
	generator    ports.ExpressionGenerator
	index        ports.PackageIndex
	cache        ports.ExpressionCache
	writer       ports.ArtifactWriter
	telemetry    ports.Telemetry
	log          ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	lockReader ports.LockReader,
	generator ports.ExpressionGenerator,
	index ports.PackageIndex,
	cache ports.ExpressionCache,
	writer ports.ArtifactWriter,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		lockReader:   lockReader,
		generator:    generator,
		index:        index,
		cache:        cache,
		writer:       writer,
		telemetry:    telemetry,
		log:          log,
	}
}

// Generate runs generation for the named environments, or for every declared
// environment when names is empty. Runs share no mutable state, so they
// execute concurrently; any failure aborts the whole invocation.
func (a *App) Generate(ctx context.Context, names []string, force bool) ([]domain.Report, error) {
	manifest, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	envs := manifest.Environments
	if len(names) > 0 {
		selected := make([]domain.EnvSpec, 0, len(names))
		for _, name := range names {
			env, ok := manifest.Environment(name)
			if !ok {
				return nil, zerr.With(domain.ErrUnknownEnvironment, "environment", name)
			}
			selected = append(selected, env)
		}
		envs = selected
	}

	opts := manifest.Options()
	// The cache key must move with the index snapshot, not just the
	// lockfile and pins.
	opts.IndexFingerprint = a.index.Fingerprint()
	reports := make([]domain.Report, len(envs))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, env := range envs {
		g.Go(func() error {
			report, err := a.generateEnv(groupCtx, env, opts, force)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(reports, func(x, y domain.Report) int {
		return strings.Compare(x.Environment, y.Environment)
	})
	return reports, nil
}

func (a *App) generateEnv(ctx context.Context, env domain.EnvSpec, opts domain.GenerateOptions, force bool) (domain.Report, error) {
	_, vtx := a.telemetry.Record(ctx, "generate "+env.Name)
	report, err := a.runEnv(env, opts, force, vtx)
	vtx.Complete(err)
	return report, err
}

func (a *App) runEnv(env domain.EnvSpec, opts domain.GenerateOptions, force bool, vtx ports.Vertex) (domain.Report, error) {
	set, err := a.lockReader.Read(env.Lockfile)
	if err != nil {
		return domain.Report{}, zerr.Wrap(err, "failed to load resolved set")
	}

	report := domain.Report{
		Environment: env.Name,
		Output:      env.Output,
		Packages:    set.Len(),
		Roots:       len(set.Roots()),
	}

	key := a.cache.Key(set, opts)
	if !force {
		if expr, ok := a.cache.Get(key); ok {
			vtx.Cached()
			if err := a.writer.Write(env.Output, expr); err != nil {
				return report, err
			}
			report.CacheHit = true
			return report, nil
		}
	}

	expr, err := a.generator.Generate(set, opts)
	if err != nil {
		return report, zerr.Wrap(err, "expression generation failed")
	}

	if err := a.cache.Put(key, expr); err != nil {
		// Cache persistence is best effort; the artifact still gets written.
		a.log.Error(err)
	}
	if err := a.writer.Write(env.Output, expr); err != nil {
		return report, err
	}
	a.log.Info("wrote " + env.Output)
	return report, nil
}
