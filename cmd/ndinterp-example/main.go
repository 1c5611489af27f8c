package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/twpayne/go-ndinterp"
)

func run() error {
	shapeStr := flag.String("shape", "", "comma-separated input shape")
	order := flag.Int("order", 1, "interpolation order (0 or 1)")
	modeStr := flag.String("mode", cmp.Or(os.Getenv("NDINTERP_MODE"), string(ndinterp.ModeConstant)), "boundary mode")
	fillValue := flag.Float64("cval", 0, "fill value for constant mode")
	verbose := flag.Bool("verbose", false, "log debug output")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if flag.NArg() < 1 {
		return errors.New("syntax: ndinterp-example [flags] data coordinates...")
	}

	data, err := parseFloats(flag.Arg(0))
	if err != nil {
		return err
	}
	shape := []int{len(data)}
	if *shapeStr != "" {
		if shape, err = parseInts(*shapeStr); err != nil {
			return err
		}
	}
	input, err := ndinterp.NewArray(shape, data)
	if err != nil {
		return err
	}

	mode, err := ndinterp.ParseMode(*modeStr)
	if err != nil {
		return err
	}

	coordinates := make([]*ndinterp.Array[float64], 0, flag.NArg()-1)
	for _, arg := range flag.Args()[1:] {
		values, err := parseFloats(arg)
		if err != nil {
			return err
		}
		coordinate, err := ndinterp.NewArray([]int{len(values)}, values)
		if err != nil {
			return err
		}
		coordinates = append(coordinates, coordinate)
	}

	logger.Debug("interpolating",
		slog.Any("shape", shape),
		slog.Int("order", *order),
		slog.String("mode", mode.String()),
		slog.Float64("cval", *fillValue),
		slog.Int("axes", len(coordinates)),
	)

	output, err := ndinterp.MapCoordinates(
		context.Background(),
		input,
		coordinates,
		ndinterp.Order(*order),
		mode,
		ndinterp.WithFillValue(*fillValue),
	)
	if err != nil {
		return err
	}
	for _, value := range output.Data() {
		fmt.Println(value)
	}

	return nil
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	values := make([]float64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

func parseInts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	values := make([]int, len(fields))
	for i, field := range fields {
		value, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
