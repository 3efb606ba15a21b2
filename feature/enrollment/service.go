package enrollment

import (
	"context"
	"fmt"
	"time"

	"roster-manager/core/config"
	"roster-manager/core/loader"
	"roster-manager/core/logger"
	"roster-manager/core/reconcile"
	"roster-manager/core/roster"
	"roster-manager/feature/enrollment/archive"
	"roster-manager/feature/enrollment/export"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service orchestrates enrollment processing for all sections of a rosters
// directory: discovery, loading, both reconciliation walks, and rendering.
// Sections are independent; a failure in one never aborts the others.
type Service struct {
	log       *zap.Logger
	paths     config.PathsConfig
	sentinels reconcile.Sentinels
	runDate   string
}

// NewService creates a Service. Every log line of the batch carries a
// generated run id so interleaved runs can be told apart.
func NewService(cfg *config.Config, log *zap.Logger) *Service {
	return &Service{
		log:       log.With(zap.String("run_id", uuid.NewString())),
		paths:     cfg.Paths,
		sentinels: fillSentinels(cfg.Statuses),
		runDate:   time.Now().Format("2006-01-02"),
	}
}

// fillSentinels substitutes defaults for unset vocabulary entries so a
// partially configured environment cannot silently disable detection.
func fillSentinels(s reconcile.Sentinels) reconcile.Sentinels {
	def := reconcile.DefaultSentinels()
	if s.Enrolled == "" {
		s.Enrolled = def.Enrolled
	}
	if s.Dropped == "" {
		s.Dropped = def.Dropped
	}
	if s.Withdrawn == "" {
		s.Withdrawn = def.Withdrawn
	}
	return s
}

// DiscoverSections finds all roster capture files grouped by section.
func (s *Service) DiscoverSections() (map[string][]loader.DatedFile, error) {
	sections, err := loader.FindRosterFiles(s.paths.RostersDir)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		s.log.Warn("No roster files found", zap.String("dir", s.paths.RostersDir))
	}
	return sections, nil
}

// loadSnapshots reads a section's capture files and returns the readable
// snapshots in date order, logging skipped files.
func (s *Service) loadSnapshots(section string, files []loader.DatedFile) []roster.Snapshot {
	results := loader.LoadSection(files)
	return loader.Readable(results, logger.WithSection(s.log, section))
}

// ComputeRoster runs the lifecycle walk for one section. A nil result means
// the section had no usable captures.
func (s *Service) ComputeRoster(section string, files []loader.DatedFile) *reconcile.RosterResult {
	snapshots := s.loadSnapshots(section, files)
	return reconcile.BuildRoster(section, snapshots, s.sentinels)
}

// GenerateRoster computes and writes one section's cumulative enrollment
// roster CSV. Returns the output path, or "" when the section yielded no
// usable captures (a reported no-result, not an error).
func (s *Service) GenerateRoster(section string, files []loader.DatedFile) (string, error) {
	l := logger.WithSection(s.log, section)

	result := s.ComputeRoster(section, files)
	if result == nil {
		l.Warn("No usable roster captures for section")
		return "", nil
	}

	path, err := export.WriteRoster(result, s.paths.RosterOutputDir, s.runDate)
	if err != nil {
		return "", fmt.Errorf("failed to generate enrollment roster: %w", err)
	}

	l.Info("Generated enrollment roster",
		zap.String("path", path),
		zap.Int("students", len(result.Rows)),
	)
	return path, nil
}

// GenerateReport computes and writes one section's chronological enrollment
// report. Returns the output path, or "" for a section with no usable
// captures.
func (s *Service) GenerateReport(section string, files []loader.DatedFile) (string, error) {
	l := logger.WithSection(s.log, section)

	snapshots := s.loadSnapshots(section, files)
	events := reconcile.BuildEventLog(snapshots, s.sentinels)
	if len(events) == 0 {
		l.Warn("No readable roster captures for section")
		return "", nil
	}

	path, err := export.WriteReport(section, events, s.paths.ReportOutputDir)
	if err != nil {
		return "", fmt.Errorf("failed to generate enrollment report: %w", err)
	}

	l.Info("Generated enrollment report",
		zap.String("path", path),
		zap.Int("dates", len(events)),
	)
	return path, nil
}

// RunRosters generates enrollment rosters for every discovered section.
// Per-section failures are logged and contained.
func (s *Service) RunRosters() error {
	sections, err := s.DiscoverSections()
	if err != nil {
		return err
	}
	for _, section := range loader.Sections(sections) {
		if _, err := s.GenerateRoster(section, sections[section]); err != nil {
			logger.WithSection(s.log, section).Error("Roster generation failed", zap.Error(err))
		}
	}
	return nil
}

// RunReports generates enrollment reports for every discovered section.
func (s *Service) RunReports() error {
	sections, err := s.DiscoverSections()
	if err != nil {
		return err
	}
	for _, section := range loader.Sections(sections) {
		if _, err := s.GenerateReport(section, sections[section]); err != nil {
			logger.WithSection(s.log, section).Error("Report generation failed", zap.Error(err))
		}
	}
	return nil
}

// RunArchive upserts every section's computed lifecycles into the archive
// store. Per-section failures are logged and contained.
func (s *Service) RunArchive(ctx context.Context, store *archive.Store) error {
	sections, err := s.DiscoverSections()
	if err != nil {
		return err
	}
	for _, section := range loader.Sections(sections) {
		l := logger.WithSection(s.log, section)

		result := s.ComputeRoster(section, sections[section])
		if result == nil {
			l.Warn("No usable roster captures for section")
			continue
		}

		saved, err := store.SaveRoster(ctx, result)
		if err != nil {
			l.Error("Lifecycle archive failed", zap.Error(err))
			continue
		}
		l.Info("Archived lifecycles", zap.Int("students", saved))
	}
	return nil
}
