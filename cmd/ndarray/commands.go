package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/ndarray/dist"
	"github.com/born-ml/ndarray/tensor"
)

type command struct {
	usage string
	run   func(args []string, out io.Writer) error
}

var commands = map[string]command{
	"version": {"Show version", runVersion},
	"add":     {"Add two operands with broadcasting: add '[[1,2]]' '[3]'", binary(tensor.Add[float64])},
	"sub":     {"Subtract two operands with broadcasting", binary(tensor.Sub[float64])},
	"matmul":  {"Batched matrix product of two operands", binary(tensor.Mul[float64])},
	"softmax": {"Softmax along -axis (default 0) of one operand", runSoftmax},
	"onehot":  {"One-hot encode the label arguments", runOneHot},
	"rand":    {"Sample a tensor: rand -shape 2,3 -dist normal -mean 0 -sd 1", runRand},
}

var commandOrder = []string{"version", "add", "sub", "matmul", "softmax", "onehot", "rand"}

var errUsage = errors.New("usage")

func runVersion(_ []string, out io.Writer) error {
	_, err := fmt.Fprintf(out, "ndarray %s\n", version)
	return err
}

func binary(op func(a, b tensor.Reader[float64]) (*tensor.Tensor[float64], error)) func([]string, io.Writer) error {
	return func(args []string, out io.Writer) error {
		if len(args) != 2 {
			return fmt.Errorf("%w: expected 2 operands, got %d", errUsage, len(args))
		}
		a, err := parseOperand(args[0])
		if err != nil {
			return err
		}
		b, err := parseOperand(args[1])
		if err != nil {
			return err
		}
		log.Debug().Stringer("a", a.Shape()).Stringer("b", b.Shape()).Msg("Operands parsed")

		result, err := op(a, b)
		if err != nil {
			return err
		}
		summarize(result)
		_, err = fmt.Fprintln(out, result)
		return err
	}
}

func runSoftmax(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("softmax", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	axis := fs.Int("axis", 0, "Axis to normalize along")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: expected 1 operand, got %d", errUsage, fs.NArg())
	}

	x, err := parseOperand(fs.Arg(0))
	if err != nil {
		return err
	}
	v, err := tensor.Softmax[float64](x, *axis)
	if err != nil {
		return err
	}
	v.Release()

	summarize(x)
	_, err = fmt.Fprintln(out, x)
	return err
}

func runOneHot(args []string, out io.Writer) error {
	x, err := tensor.FromOneHot(args)
	if err != nil {
		return err
	}
	log.Debug().Int("labels", len(args)).Int("classes", x.Shape()[1]).Msg("Labels encoded")
	_, err = fmt.Fprintln(out, x)
	return err
}

func runRand(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("rand", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	shapeFlag := fs.String("shape", "", "Comma-separated dimensions, e.g. 2,3 (empty for a scalar)")
	distFlag := fs.String("dist", "standard", "Distribution (uniform, normal, standard, uniform-he, normal-he)")
	lo := fs.Float64("lo", 0, "Uniform lower bound")
	hi := fs.Float64("hi", 1, "Uniform upper bound")
	mean := fs.Float64("mean", 0, "Normal mean")
	sd := fs.Float64("sd", 1, "Normal standard deviation")
	fanIn := fs.Int("fanin", 1, "Fan-in for He initialization")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	shape, err := parseShape(*shapeFlag)
	if err != nil {
		return err
	}

	var draw func(n int) ([]float32, error)
	switch *distFlag {
	case "uniform":
		draw = func(n int) ([]float32, error) { return dist.Uniform(n, float32(*lo), float32(*hi)) }
	case "normal":
		draw = func(n int) ([]float32, error) { return dist.Normal(n, float32(*mean), float32(*sd)) }
	case "standard":
		draw = dist.Standard
	case "uniform-he":
		draw = func(n int) ([]float32, error) { return dist.UniformHe(n, *fanIn) }
	case "normal-he":
		draw = func(n int) ([]float32, error) { return dist.NormalHe(n, *fanIn) }
	default:
		return fmt.Errorf("%w: unknown distribution %q", errUsage, *distFlag)
	}

	x, err := dist.Tensor(shape, draw)
	if err != nil {
		return err
	}
	summarize(x)
	_, err = fmt.Fprintln(out, x)
	return err
}

// parseShape parses "2,3,4" into a Shape. The empty string is the 0-d shape.
func parseShape(s string) (tensor.Shape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return tensor.Shape{}, nil
	}
	parts := strings.Split(s, ",")
	shape := make(tensor.Shape, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, tensor.Wrap(fmt.Errorf("invalid shape %q: %w", s, err))
		}
		shape[i] = d
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

// parseOperand decodes a JSON number or nested list into a float64 tensor.
func parseOperand(s string) (*tensor.Tensor[float64], error) {
	var nested any
	if err := json.Unmarshal([]byte(s), &nested); err != nil {
		return nil, tensor.Wrap(fmt.Errorf("operand %q: %w", s, err))
	}
	return tensor.FromVec[float64](nested)
}

// summarize logs the shape and basic statistics of a result at debug level.
func summarize[T tensor.Numeric](x *tensor.Tensor[T]) {
	ev := log.Debug()
	if !ev.Enabled() {
		return
	}
	vals := make([]float64, 0, x.NElems())
	for v := range x.Iter() {
		vals = append(vals, float64(v))
	}
	ev = ev.Stringer("shape", x.Shape()).Int("elements", len(vals))
	if len(vals) > 0 {
		m, sd := stat.MeanStdDev(vals, nil)
		ev = ev.Float64("min", floats.Min(vals)).Float64("max", floats.Max(vals)).
			Float64("mean", m).Float64("sd", sd)
	}
	ev.Msg("Result")
}
