// SPDX-License-Identifier: MIT

package demo

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/katalvlaran/ndlite/array"
	"github.com/katalvlaran/ndlite/backend"
	"github.com/katalvlaran/ndlite/config"
	"go.uber.org/zap"
)

// gonumModule is looked up in the build info to report the native library.
const gonumModule = "gonum.org/v1/gonum"

// Environment describes the running process.
type Environment struct {
	GoVersion  string
	Platform   string // GOOS/GOARCH
	Executable string
	Backend    backend.Kind
	Library    string // gonum module version, or "not linked"
}

// TemperatureReport carries every value the temperature demonstration prints.
type TemperatureReport struct {
	Celsius    *array.Array
	Fahrenheit *array.Array
	AverageF   float64

	Shape   array.Shape
	Size    int
	Highest float64
	Lowest  float64
	Range   float64

	BackendSum  float64
	LoopSum     float64
	BackendTime time.Duration
	LoopTime    time.Duration
	SpeedRatio  float64 // LoopTime / BackendTime; 0 when BackendTime is 0

	Env Environment
}

// Temperature runs the conversion, summary statistics and timing walk-through.
func (r *Runner) Temperature(ctx context.Context, cfg config.TemperatureConfig) (*TemperatureReport, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	rep := &TemperatureReport{}
	if err := r.convert(rep, cfg); err != nil {
		return nil, err
	}
	if err := r.summarize(rep, cfg); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if err := r.timeSums(rep, cfg); err != nil {
		return nil, err
	}
	rep.Env = r.Environment()

	p := &printer{w: r.out}
	p.printf("Temperatures in Fahrenheit: %s\n", rep.Fahrenheit)
	p.printf("Average temperature (°F): %s\n", array.FormatValue(rep.AverageF))
	p.printf("\nArray Shape: %s\n", rep.Shape)
	p.printf("Total Elements: %d\n", rep.Size)
	p.printf("Highest Score: %s\n", array.FormatValue(rep.Highest))
	p.printf("Lowest Score: %s\n", array.FormatValue(rep.Lowest))
	p.printf("Score Range: %s\n", array.FormatValue(rep.Range))
	p.printf("\nBackend sum: %s (%s)\n", array.FormatValue(rep.BackendSum), rep.BackendTime)
	p.printf("Loop sum: %s (%s)\n", array.FormatValue(rep.LoopSum), rep.LoopTime)
	p.printf("Backend is ~%sx faster than the loop\n", array.FormatValue(rep.SpeedRatio))
	p.printf("\n%s", rep.Env)
	if p.err != nil {
		return nil, fmt.Errorf("demo: write temperature: %w", p.err)
	}

	r.log.Debug("temperature demo done",
		zap.Duration("backend_time", rep.BackendTime),
		zap.Duration("loop_time", rep.LoopTime))

	return rep, nil
}

func (r *Runner) convert(rep *TemperatureReport, cfg config.TemperatureConfig) error {
	rep.Celsius = array.NewVector(cfg.Celsius)
	scaled, err := r.b.Scale(rep.Celsius, 1.8)
	if err != nil {
		return fmt.Errorf("demo: fahrenheit: %w", err)
	}
	if rep.Fahrenheit, err = r.b.Shift(scaled, 32); err != nil {
		return fmt.Errorf("demo: fahrenheit: %w", err)
	}

	avg, err := r.b.MeanAll(rep.Fahrenheit)
	if err != nil {
		return fmt.Errorf("demo: average: %w", err)
	}
	rep.AverageF = array.RoundEven(avg, cfg.Decimals)

	return nil
}

func (r *Runner) summarize(rep *TemperatureReport, cfg config.TemperatureConfig) error {
	scores := array.NewVector(cfg.Scores)
	rep.Shape = scores.Shape()
	rep.Size = scores.Size()

	var err error
	if rep.Highest, err = r.b.MaxAll(scores); err != nil {
		return fmt.Errorf("demo: highest: %w", err)
	}
	if rep.Lowest, err = r.b.MinAll(scores); err != nil {
		return fmt.Errorf("demo: lowest: %w", err)
	}
	rep.Range = rep.Highest - rep.Lowest

	return nil
}

// timeSums compares the backend's vectorised sum of 1..SumUpTo with a plain loop.
func (r *Runner) timeSums(rep *TemperatureReport, cfg config.TemperatureConfig) error {
	start := time.Now()
	seq, err := r.b.Arange(1, cfg.SumUpTo+1)
	if err != nil {
		return fmt.Errorf("demo: arange: %w", err)
	}
	if rep.BackendSum, err = r.b.Sum(seq); err != nil {
		return fmt.Errorf("demo: sum: %w", err)
	}
	rep.BackendTime = time.Since(start)

	start = time.Now()
	rep.LoopSum = float64(loopSum(cfg.SumUpTo))
	rep.LoopTime = time.Since(start)

	ratio := array.SafeDiv(float64(rep.LoopTime), float64(rep.BackendTime))
	rep.SpeedRatio = array.RoundEven(ratio, config.DefaultRatioDecimals)

	return nil
}

// loopSum builds 1..n as a slice and adds it up element by element.
func loopSum(n int) int64 {
	xs := make([]int64, n)
	for i := range xs {
		xs[i] = int64(i + 1)
	}
	var total int64
	for _, x := range xs {
		total += x
	}

	return total
}

// Environment reports the Go runtime, executable and numeric library in use.
func (r *Runner) Environment() Environment {
	env := Environment{
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Backend:   r.b.Name(),
		Library:   "not linked",
	}
	if exe, err := os.Executable(); err == nil {
		env.Executable = exe
	} else {
		env.Executable = "unknown"
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == gonumModule {
				env.Library = gonumModule + " " + dep.Version
				break
			}
		}
	}

	return env
}

// String renders the environment as "key: value" lines.
func (e Environment) String() string {
	return fmt.Sprintf("Go version: %s\nPlatform: %s\nExecutable: %s\nBackend: %s\nNumeric library: %s\n",
		e.GoVersion, e.Platform, e.Executable, e.Backend, e.Library)
}
