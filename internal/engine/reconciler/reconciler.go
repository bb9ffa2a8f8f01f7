// Package reconciler decides the effective build configuration from the
// command line, the environment and the build record.
package reconciler

import (
	"strings"

	"go.trai.ch/buildit/internal/core/domain"
	"go.trai.ch/buildit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reconciler turns requested flags into a domain.Configuration, reading and
// writing the build record as the requested mode demands.
type Reconciler struct {
	store  ports.RecordStore
	logger ports.Logger
}

// New creates a new Reconciler.
func New(store ports.RecordStore, logger ports.Logger) *Reconciler {
	return &Reconciler{
		store:  store,
		logger: logger,
	}
}

// Reconcile returns the effective configuration for flags. envSourceDir is the
// value of SIM_DIR. Configure always rewrites the record; Build reuses it and
// synthesizes one when none exists. No filesystem access happens before the
// mode and source directory are known to be valid.
func (r *Reconciler) Reconcile(flags domain.Flags, envSourceDir string) (domain.Configuration, error) {
	switch flags.Mode {
	case domain.ModeUnset:
		return domain.Configuration{}, domain.ErrMissingAction
	case domain.ModeHelp:
		return domain.Configuration{Mode: domain.ModeHelp}, nil
	case domain.ModeConfigure, domain.ModeBuild, domain.ModeClean:
	default:
		return domain.Configuration{}, zerr.With(zerr.New("unknown mode"), "mode", flags.Mode.String())
	}

	sourceDir, err := domain.ResolveSourceDir(envSourceDir, flags.SourceDir)
	if err != nil {
		return domain.Configuration{}, err
	}

	switch flags.Mode {
	case domain.ModeConfigure:
		return r.configure(flags, sourceDir)
	case domain.ModeBuild:
		return r.build(flags, sourceDir)
	default:
		return r.clean(flags, sourceDir)
	}
}

func (r *Reconciler) configure(flags domain.Flags, sourceDir string) (domain.Configuration, error) {
	cfg, err := fresh(flags, sourceDir)
	if err != nil {
		return domain.Configuration{}, err
	}
	cfg.Mode = domain.ModeConfigure

	if err := r.persist(cfg.Record(domain.ModeConfigure)); err != nil {
		return domain.Configuration{}, err
	}
	return cfg, nil
}

func (r *Reconciler) build(flags domain.Flags, sourceDir string) (domain.Configuration, error) {
	exists, err := r.store.Exists(sourceDir)
	if err != nil {
		return domain.Configuration{}, err
	}

	if !exists {
		cfg, err := fresh(flags, sourceDir)
		if err != nil {
			return domain.Configuration{}, err
		}
		r.logger.Info("no build record found, using defaults", "sourceDir", sourceDir)
		if err := r.persist(cfg.Record(domain.ModeConfigure)); err != nil {
			return domain.Configuration{}, err
		}
		cfg.Mode = domain.ModeBuild
		return cfg, nil
	}

	rec, err := r.store.Read(sourceDir)
	if err != nil {
		return domain.Configuration{}, err
	}

	buildDir := rec.BuildDir
	if flags.BuildDir != "" {
		buildDir, err = domain.ResolveBuildDir(sourceDir, flags.BuildDir, rec.BuildType)
		if err != nil {
			return domain.Configuration{}, err
		}
	}

	return domain.Configuration{
		Mode:      domain.ModeBuild,
		BuildType: rec.BuildType,
		SourceDir: sourceDir,
		BuildDir:  buildDir,
		ExtraArgs: flags.ExtraArgs,
	}, nil
}

// clean targets <src>build/, which holds every build type. With -b only the
// build type directory under it is targeted, so siblings of the -b directory
// are never touched.
func (r *Reconciler) clean(flags domain.Flags, sourceDir string) (domain.Configuration, error) {
	buildType := flags.BuildTypeOrDefault()

	var target string
	var err error
	if strings.TrimSpace(flags.BuildDir) == "" {
		target, err = domain.ResolveBuildRoot(sourceDir, "")
	} else {
		target, err = domain.ResolveBuildDir(sourceDir, flags.BuildDir, buildType)
	}
	if err != nil {
		return domain.Configuration{}, err
	}

	return domain.Configuration{
		Mode:      domain.ModeClean,
		BuildType: buildType,
		SourceDir: sourceDir,
		BuildDir:  target,
		ExtraArgs: flags.ExtraArgs,
	}, nil
}

func (r *Reconciler) persist(rec domain.Configuration) error {
	if err := r.store.Write(rec.SourceDir, rec); err != nil {
		return err
	}
	r.logger.Info("build record written",
		"buildMode", uint(rec.Mode),
		"buildType", rec.BuildType,
		"sourceDir", rec.SourceDir,
		"buildDir", rec.BuildDir,
	)
	return nil
}

// fresh derives a configuration from flags alone.
func fresh(flags domain.Flags, sourceDir string) (domain.Configuration, error) {
	buildType := flags.BuildTypeOrDefault()
	buildDir, err := domain.ResolveBuildDir(sourceDir, flags.BuildDir, buildType)
	if err != nil {
		return domain.Configuration{}, err
	}

	return domain.Configuration{
		Mode:      flags.Mode,
		BuildType: buildType,
		SourceDir: sourceDir,
		BuildDir:  buildDir,
		ExtraArgs: flags.ExtraArgs,
	}, nil
}
