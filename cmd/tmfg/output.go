package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/katalvlaran/tmfg/tmfg"
)

type buildOutput struct {
	Mode       string      `json:"mode"`
	N          int         `json:"n"`
	Cliques    [][]int     `json:"cliques"`
	Separators [][]int     `json:"separators"`
	Peo        []int       `json:"peo"`
	Matrix     [][]float64 `json:"matrix"`
}

func newBuildOutput(res *tmfg.Result) buildOutput {
	out := buildOutput{
		Mode:       res.Mode.String(),
		N:          len(res.Peo),
		Cliques:    make([][]int, 0, len(res.Cliques)),
		Separators: make([][]int, 0, len(res.Separators)),
		Peo:        make([]int, 0, len(res.Peo)),
		Matrix:     res.Matrix.ToRows(),
	}
	for _, c := range res.Cliques {
		out.Cliques = append(out.Cliques, c.Ints())
	}
	for _, s := range res.Separators {
		out.Separators = append(out.Separators, s.Ints())
	}
	for _, v := range res.Peo {
		out.Peo = append(out.Peo, int(v))
	}

	return out
}

func writeOutput(w io.Writer, res *tmfg.Result, indent int) error {
	enc := json.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	return enc.Encode(newBuildOutput(res))
}
