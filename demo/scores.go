// SPDX-License-Identifier: MIT

package demo

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ndlite/array"
	"github.com/katalvlaran/ndlite/config"
	"go.uber.org/zap"
)

// ScoresReport carries every value the scores demonstration prints.
type ScoresReport struct {
	Scores         *array.Array // students × subjects
	Element        float64      // scores[2, 1]
	LastTwo        *array.Array // scores[-2:, :]
	Block          *array.Array // scores[:3, 1:3]
	ColumnMean     *array.Array // rounded per-subject mean
	Curved         *array.Array // scores + curve, capped
	BestPerStudent *array.Array // per-row maximum of Curved
	Normalized     *array.Array // per-row min-max scaling of Curved
	MaxRow, MaxCol int          // location of the largest normalised value
	Above          *array.Array // Curved elements strictly above the threshold
}

// Scores runs the student-score analysis.
func (r *Runner) Scores(ctx context.Context, cfg config.ScoresConfig) (*ScoresReport, error) {
	if err := r.scoresPrepare(ctx, cfg); err != nil {
		return nil, err
	}

	rep := &ScoresReport{}
	if err := r.scoresIndexing(rep, cfg); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := r.scoresCurve(rep, cfg); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := r.scoresNormalize(rep, cfg); err != nil {
		return nil, err
	}

	p := &printer{w: r.out}
	p.printf("Original Scores:\n%s\n", rep.Scores)
	p.printf("\nScore of 3rd student in 2nd subject: %s\n", array.FormatValue(rep.Element))
	p.printf("\nScores of last 2 students:\n%s\n", rep.LastTwo)
	p.printf("\nFirst 3 students, subjects 2 & 3:\n%s\n", rep.Block)
	p.printf("\nColumn-wise mean (per subject): %s\n", rep.ColumnMean)
	p.printf("\nCurved Scores:\n%s\n", rep.Curved)
	p.printf("\nBest subject score per student: %s\n", rep.BestPerStudent)
	p.printf("\nNormalized Scores:\n%s\n", rep.Normalized)
	p.printf("\nHighest normalized value at (student_index, subject_index): (%d, %d)\n", rep.MaxRow, rep.MaxCol)
	p.printf("\nScores strictly above %s:\n%s\n", array.FormatValue(cfg.Threshold), rep.Above)
	if p.err != nil {
		return nil, fmt.Errorf("demo: write scores: %w", p.err)
	}

	r.log.Debug("scores demo done",
		zap.Stringer("shape", rep.Scores.Shape()),
		zap.Int("above_threshold", rep.Above.Size()))

	return rep, nil
}

func (r *Runner) scoresPrepare(ctx context.Context, cfg config.ScoresConfig) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if len(cfg.Curve) != cfg.Subjects {
		return fmt.Errorf("demo: curve has %d entries for %d subjects: %w", len(cfg.Curve), cfg.Subjects, array.ErrShape)
	}

	return nil
}

// scoresIndexing draws the matrix and exercises element, row and block access.
func (r *Runner) scoresIndexing(rep *ScoresReport, cfg config.ScoresConfig) error {
	var err error
	if rep.Scores, err = r.b.RandInt(cfg.Low, cfg.High, cfg.Students, cfg.Subjects); err != nil {
		return fmt.Errorf("demo: scores: %w", err)
	}
	if rep.Element, err = rep.Scores.At(2, 1); err != nil {
		return fmt.Errorf("demo: element: %w", err)
	}
	if rep.LastTwo, err = rep.Scores.Slice(array.From(-2)); err != nil {
		return fmt.Errorf("demo: last two: %w", err)
	}
	if rep.Block, err = rep.Scores.Window(array.To(3), array.Between(1, 3)); err != nil {
		return fmt.Errorf("demo: block: %w", err)
	}

	mean, err := r.b.Mean(rep.Scores, array.MeanAxis)
	if err != nil {
		return fmt.Errorf("demo: column mean: %w", err)
	}
	if rep.ColumnMean, err = r.b.Round(mean, cfg.Decimals); err != nil {
		return fmt.Errorf("demo: column mean: %w", err)
	}

	return nil
}

// scoresCurve adds the per-subject curve and caps the result.
func (r *Runner) scoresCurve(rep *ScoresReport, cfg config.ScoresConfig) error {
	curved, err := r.b.Add(rep.Scores, array.NewVector(cfg.Curve))
	if err != nil {
		return fmt.Errorf("demo: curve: %w", err)
	}
	if rep.Curved, err = r.b.Clip(curved, cfg.Cap); err != nil {
		return fmt.Errorf("demo: cap: %w", err)
	}
	if rep.BestPerStudent, err = r.b.Max(rep.Curved, array.ExtremeAxis); err != nil {
		return fmt.Errorf("demo: best per student: %w", err)
	}

	return nil
}

// scoresNormalize scales each student's row into [0, 1], locates the
// largest value and filters scores above the threshold.
func (r *Runner) scoresNormalize(rep *ScoresReport, cfg config.ScoresConfig) error {
	lo, err := r.b.Min(rep.Curved, array.ExtremeAxis, array.WithKeepDims())
	if err != nil {
		return fmt.Errorf("demo: row min: %w", err)
	}
	hi, err := r.b.Max(rep.Curved, array.ExtremeAxis, array.WithKeepDims())
	if err != nil {
		return fmt.Errorf("demo: row max: %w", err)
	}
	num, err := r.b.Sub(rep.Curved, lo)
	if err != nil {
		return fmt.Errorf("demo: normalize: %w", err)
	}
	den, err := r.b.Sub(hi, lo)
	if err != nil {
		return fmt.Errorf("demo: normalize: %w", err)
	}
	if rep.Normalized, err = r.b.Div(num, den); err != nil {
		return fmt.Errorf("demo: normalize: %w", err)
	}

	idx, err := r.b.Argmax(rep.Normalized)
	if err != nil {
		return fmt.Errorf("demo: argmax: %w", err)
	}
	if rep.MaxRow, rep.MaxCol, err = r.b.Unravel(idx, rep.Normalized.Shape()); err != nil {
		return fmt.Errorf("demo: unravel: %w", err)
	}

	mask, err := r.b.Greater(rep.Curved, cfg.Threshold)
	if err != nil {
		return fmt.Errorf("demo: threshold: %w", err)
	}
	if rep.Above, err = r.b.Select(rep.Curved, mask); err != nil {
		return fmt.Errorf("demo: threshold: %w", err)
	}

	return nil
}
