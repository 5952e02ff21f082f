// Package pipeline provides the high-level orchestration for the resume parsing
// and matching process.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sparshb4tra/resume-parser/internal/ingestion"
	"github.com/sparshb4tra/resume-parser/internal/logger"
	"github.com/sparshb4tra/resume-parser/internal/matching"
	"github.com/sparshb4tra/resume-parser/internal/parsing"
	"github.com/sparshb4tra/resume-parser/internal/types"
	"go.uber.org/zap"
)

// Step names reported through ProgressEvent.
const (
	StepLoadResume = "load_resume"
	StepExtract    = "extract"
	StepStructure  = "structure"
	StepLoadJob    = "load_job"
	StepMatch      = "match"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs. It may be called
// from several goroutines at once.
type ProgressCallback func(event ProgressEvent)

// ResumeOptions configures ParseResume.
type ResumeOptions struct {
	Path       string
	Format     string // declared format; empty means detect from the extension
	Parser     *parsing.Parser
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// ResumeResult holds the outputs of the resume branch.
type ResumeResult struct {
	Metadata *ingestion.Metadata
	Text     string
	Profile  *types.CandidateProfile
}

// JobResult holds the outputs of the job description branch.
type JobResult struct {
	Metadata *ingestion.Metadata
	Text     string
}

// RunOptions holds configuration for a full resume against job run.
type RunOptions struct {
	ResumePath   string
	ResumeFormat string
	JobPath      string
	Parser       *parsing.Parser
	Matcher      *matching.Matcher
	Logger       *zap.Logger
	OnProgress   ProgressCallback
	Now          func() time.Time
}

// Result is the outcome of Run.
type Result struct {
	Resume *ResumeResult
	Job    *JobResult
	Report *types.Report
}

func emit(cb ProgressCallback, step, message string, content any) {
	if cb != nil {
		cb(ProgressEvent{Step: step, Message: message, Content: content})
	}
}

// ParseResume loads a resume file, extracts its text and structures it.
func ParseResume(ctx context.Context, opts ResumeOptions) (*ResumeResult, error) {
	log := logger.WithFields(opts.Logger)
	parser := opts.Parser
	if parser == nil {
		parser = parsing.NewParser(parsing.WithLogger(log))
	}

	emit(opts.OnProgress, StepLoadResume, "Loading resume", nil)
	file, err := ingestion.LoadResume(opts.Path, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("loading resume failed: %w", err)
	}
	log.Debug("resume loaded", logger.FileFields(opts.Path, string(file.Format), file.Metadata.Hash)...)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	emit(opts.OnProgress, StepExtract, "Extracting text", nil)
	text, err := file.Text()
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}
	log.Debug("text extracted",
		zap.Int("chars", len(text)),
		zap.String("preview", logger.TruncateForLog(text, 80)))

	emit(opts.OnProgress, StepStructure, "Structuring resume", nil)
	profile, err := parser.Structure(text)
	if err != nil {
		return nil, fmt.Errorf("structuring resume failed: %w", err)
	}
	emit(opts.OnProgress, StepStructure, "Resume structured", profile)

	return &ResumeResult{Metadata: file.Metadata, Text: text, Profile: profile}, nil
}

// LoadJob reads and cleans a job description file.
func LoadJob(ctx context.Context, path string, log *zap.Logger, cb ProgressCallback) (*JobResult, error) {
	emit(cb, StepLoadJob, "Loading job description", nil)
	text, metadata, err := ingestion.IngestFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading job description failed: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.WithFields(log).Debug("job description loaded",
		append(logger.FileFields(path, metadata.Format, metadata.Hash), zap.Int("chars", len(text)))...)

	return &JobResult{Metadata: metadata, Text: text}, nil
}

// Run loads the resume and the job description concurrently, then matches
// them and wraps the outcome in a report.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	log := logger.WithFields(opts.Logger)
	matcher := opts.Matcher
	if matcher == nil {
		m, err := matching.NewMatcher(matching.DefaultWeights(), matching.WithLogger(log))
		if err != nil {
			return nil, err
		}
		matcher = m
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	g, gCtx := errgroup.WithContext(ctx)

	var (
		resume *ResumeResult
		job    *JobResult
		mu     sync.Mutex
	)

	g.Go(func() error {
		result, err := ParseResume(gCtx, ResumeOptions{
			Path:       opts.ResumePath,
			Format:     opts.ResumeFormat,
			Parser:     opts.Parser,
			Logger:     log,
			OnProgress: opts.OnProgress,
		})
		if err != nil {
			return err
		}
		mu.Lock()
		resume = result
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		result, err := LoadJob(gCtx, opts.JobPath, log, opts.OnProgress)
		if err != nil {
			return err
		}
		mu.Lock()
		job = result
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	emit(opts.OnProgress, StepMatch, "Matching resume against job description", nil)
	match := matcher.Match(resume.Profile, job.Text)
	emit(opts.OnProgress, StepMatch, "Match complete", match)

	report := types.NewReport(types.ReportSource{
		ResumePath: opts.ResumePath,
		ResumeHash: resume.Metadata.Hash,
		JobPath:    opts.JobPath,
		JobHash:    job.Metadata.Hash,
	}, resume.Profile, match, now())

	log.Info("match complete",
		zap.String("report_id", report.ID),
		zap.Float64("overall_score", match.OverallScore),
		zap.Int("matched_skills", len(match.MatchedSkills)),
		zap.Int("missing_skills", len(match.MissingSkills)))

	return &Result{Resume: resume, Job: job, Report: report}, nil
}
