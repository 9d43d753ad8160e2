package main

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/statkit-ml/statkit/linalg"
)

// systemJSON is the on-disk form of a linear system: a square (or
// rectangular, solved least-squares) coefficient matrix and a
// right-hand-side vector.
type systemJSON struct {
	A [][]float64 `json:"a"`
	B []float64   `json:"b"`
}

func solveCmd() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "Solve the linear system a @ x = b from a JSON file",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("solve: expected exactly one input file")
			}
			return runSolve(cmd.Args().First())
		},
	}
}

func runSolve(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	var sys systemJSON
	if err := json.Unmarshal(raw, &sys); err != nil {
		return fmt.Errorf("solve: parse %s: %w", path, err)
	}

	a, err := denseFromRows(sys.A)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	defer a.Release()
	if len(sys.B) != a.Rows() {
		return fmt.Errorf("solve: right-hand side has %d elements, matrix has %d rows", len(sys.B), a.Rows())
	}
	b := linalg.VecFromSlice(sys.B)
	defer b.Release()

	x, err := linalg.SolveVec(a, b)
	if err != nil {
		return err
	}
	defer x.Release()

	out, err := json.Marshal(x.Data())
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func denseFromRows(rows [][]float64) (*linalg.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty matrix")
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("row %d has %d elements, want %d", i, len(r), cols)
		}
		flat = append(flat, r...)
	}
	return linalg.FromSlice(flat, len(rows), cols)
}
