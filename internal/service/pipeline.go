package service

import (
	"github.com/sirupsen/logrus"

	"stylo/internal/artifact"
	"stylo/internal/config"
	"stylo/internal/corpus"
	"stylo/internal/vectorizer"
)

// Pipeline runs the corpus stages in order: load, preprocess, tokenize,
// segment, vectorize, serialize. Any stage error aborts the run; the
// artifact is written only after every prior stage succeeds.
type Pipeline struct {
	cfg *config.AppConfig
	log *logrus.Entry
}

func NewPipeline(cfg *config.AppConfig, log *logrus.Entry) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

// Run executes every stage up to vectorization and returns the artifact
// without writing it.
func (p *Pipeline) Run(dir string) (*artifact.Artifact, error) {
	c, err := corpus.LoadDirectory(dir, p.cfg.Corpus.Language)
	if err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{"documents": len(c.Documents), "language": c.Language}).Info("corpus loaded")

	if err := corpus.Preprocess(c); err != nil {
		return nil, err
	}
	if err := corpus.Tokenize(c, p.cfg.Tokenizer.MaxSize); err != nil {
		return nil, err
	}
	if p.cfg.Segmenter.Size > 0 {
		if err := corpus.Segment(c, p.cfg.Segmenter.Size, p.cfg.Segmenter.Step); err != nil {
			return nil, err
		}
		p.log.WithField("segments", len(c.Documents)).Info("corpus segmented")
	}

	vec, err := vectorizer.New(vectorizer.Params{
		MFI:         p.cfg.Vectorizer.MFI,
		NgramType:   p.cfg.Vectorizer.NgramType,
		NgramSize:   p.cfg.Vectorizer.NgramSize,
		VectorSpace: p.cfg.Vectorizer.VectorSpace,
	})
	if err != nil {
		return nil, err
	}
	matrix, err := vec.FitTransform(c)
	if err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{
		"rows":     len(matrix),
		"features": len(vec.FeatureNames()),
		"space":    p.cfg.Vectorizer.VectorSpace,
	}).Info("corpus vectorized")

	return &artifact.Artifact{
		Titles:   c.Titles(),
		Authors:  c.Authors(),
		Features: vec.FeatureNames(),
		Matrix:   matrix,
	}, nil
}

// Build runs the full pipeline and serializes the artifact to outPath.
func (p *Pipeline) Build(dir, outPath string) error {
	a, err := p.Run(dir)
	if err != nil {
		return err
	}
	if err := artifact.Save(outPath, a); err != nil {
		return err
	}
	p.log.WithField("path", outPath).Info("artifact written")
	return nil
}
