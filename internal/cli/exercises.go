package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agbru/drills/internal/arith"
	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/geometry"
	"github.com/agbru/drills/internal/logging"
	"github.com/agbru/drills/internal/textview"
)

const (
	defaultView  = "Hello, world!"
	defaultOwned = "hello"
)

// defaultRectangles are rect1, rect2 and rect3 of the rectangle exercise.
var defaultRectangles = []geometry.Rectangle{
	{Width: 30, Height: 50},
	{Width: 10, Height: 40},
	{Width: 60, Height: 45},
}

func newSlicesCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "slices [view] [owned]",
		Short: "Print the first three characters of one string and all of another",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := firstNonEmpty(argAt(args, 0), env.Inputs.View, defaultView)
			owned := firstNonEmpty(argAt(args, 1), env.Inputs.Owned, defaultOwned)
			return env.track(cmd.Context(), "slices", func(context.Context) error {
				if err := textview.PrintView(env.Out, view); err != nil {
					return err
				}
				return textview.PrintOwned(env.Out, owned)
			})
		},
	}
}

func newSumCommand(env *Env) *cobra.Command {
	var saturate bool
	cmd := &cobra.Command{
		Use:   "sum [values...]",
		Short: "Sum a list of integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.track(cmd.Context(), "sum", func(context.Context) error {
				values, err := parseInts(args)
				if err != nil {
					return err
				}
				if len(args) == 0 {
					values = arith.DefaultValues
					if env.Inputs.Values != nil {
						values = env.Inputs.Values
					}
				}
				env.Logger.Debug("summing", logging.Int("count", len(values)))

				var total int64
				if saturate {
					total = arith.SaturatingSum(values)
				} else if total, err = arith.Sum(values); err != nil {
					return err
				}
				fmt.Fprintf(env.Out, "The sum is: %d\n", total)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&saturate, "saturate", false, "clamp to the int64 range instead of failing on overflow")
	return cmd
}

func newRectCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "rect [width height]...",
		Short: "Show a rectangle's area and which other rectangles it can hold",
		Long: `rect prints the first rectangle, its area, and whether it can hold each of
the following rectangles. Rectangles are given as width/height pairs; without
arguments they come from --file or the built-in 30x50, 10x40 and 60x45.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.track(cmd.Context(), "rect", func(context.Context) error {
				rects, err := parseRectangles(args)
				if err != nil {
					return err
				}
				if len(rects) == 0 {
					rects = defaultRectangles
					if len(env.Inputs.Rectangles) > 0 {
						rects = env.Inputs.Rectangles
					}
				}
				DisplayRectangles(env.Out, rects)
				return nil
			})
		},
	}
}

func parseInts(args []string) ([]int64, error) {
	values := make([]int64, 0, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, &apperrors.ParseError{Field: fmt.Sprintf("value #%d", i+1), Input: a, Err: err}
		}
		values = append(values, v)
	}
	return values, nil
}

func parseRectangles(args []string) ([]geometry.Rectangle, error) {
	if len(args)%2 != 0 {
		return nil, apperrors.ValidationError{Field: "rectangles", Message: "expected width/height pairs"}
	}
	rects := make([]geometry.Rectangle, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		w, err := strconv.ParseUint(args[i], 10, 32)
		if err != nil {
			return nil, &apperrors.ParseError{Field: "width", Input: args[i], Err: err}
		}
		h, err := strconv.ParseUint(args[i+1], 10, 32)
		if err != nil {
			return nil, &apperrors.ParseError{Field: "height", Input: args[i+1], Err: err}
		}
		rects = append(rects, geometry.Rectangle{Width: uint32(w), Height: uint32(h)})
	}
	return rects, nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
