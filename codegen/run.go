package codegen

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/teranos/ontogen/codegen/fragment"
	"github.com/teranos/ontogen/errors"
	"github.com/teranos/ontogen/logger"
)

type job struct {
	path    string
	concept string
	build   func() (*fragment.File, error)
}

// Run generates every file for the session's ontology: one per generated
// concept plus a mod.rs for each module no concept owns. Files render
// concurrently, at most Options.Workers at a time; the result is sorted by
// path. The first failure cancels the remaining work.
func Run(ctx context.Context, s *Session, gen Generator) ([]GeneratedFile, error) {
	start := time.Now()
	s.AssignIDs()

	jobs, err := plan(s, gen)
	if err != nil {
		return nil, err
	}

	log := logger.Named("codegen")
	ctx = logger.WithSession(ctx, s.ID)
	log.Infow("Generating",
		append(logger.FieldsFromContext(ctx),
			logger.FieldLanguage, gen.Language(),
			logger.FieldCount, len(jobs),
			logger.FieldWorkers, s.Options.Workers)...)

	results := make([]GeneratedFile, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Options.Workers)

	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file, err := j.build()
			if err != nil {
				return errors.Wrapf(err, "failed to generate %s", j.path)
			}
			results[i] = GeneratedFile{
				Path:    j.path,
				Content: file.GenerateCodeWidth(s.Options.LineWidth),
			}
			log.Debugw("Rendered file",
				append(logger.FieldsFromContext(logger.WithConcept(gctx, j.concept)),
					logger.FieldFile, j.path,
					logger.FieldBytes, len(results[i].Content))...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	log.Infow("Generation complete",
		append(logger.FieldsFromContext(ctx),
			logger.FieldCount, len(results),
			logger.FieldDurationMS, time.Since(start).Milliseconds())...)
	return results, nil
}

func plan(s *Session, gen Generator) ([]job, error) {
	var jobs []job
	seen := make(map[string]string)
	add := func(j job) error {
		if prev, ok := seen[j.path]; ok {
			return errors.WithHint(
				errors.Newf("%s and %s both generate %s", prev, j.concept, j.path),
				"give one of them an explicit module")
		}
		seen[j.path] = j.concept
		jobs = append(jobs, j)
		return nil
	}

	for _, c := range s.Ontology.Generated() {
		c := c
		if err := add(job{
			path:    s.Resolver.FilePath(c),
			concept: c.Name,
			build:   func() (*fragment.File, error) { return gen.GenerateFile(s, c) },
		}); err != nil {
			return nil, err
		}
	}

	for _, m := range s.Modules {
		m := m
		if m.Owner != nil || m.External {
			continue
		}
		if err := add(job{
			path:    m.FilePath(),
			concept: "mod " + m.Name(),
			build:   func() (*fragment.File, error) { return gen.GenerateIndex(s, m) },
		}); err != nil {
			return nil, err
		}
	}
	return jobs, nil
}
