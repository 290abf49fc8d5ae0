package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all top-level blocks from any file.
type fileRoot struct {
	Puzzles []*Puzzle `hcl:"puzzle,block"`
	Remain  hcl.Body  `hcl:",remain"`
}

// Puzzle is the HCL schema of a `puzzle` block.
type Puzzle struct {
	Name        string         `hcl:"name,label"`
	Day         int            `hcl:"day,optional"`
	Description string         `hcl:"description,optional"`
	Input       string         `hcl:"input,optional"`
	Parts       []int          `hcl:"parts,optional"`
	Want        hcl.Expression `hcl:"want,optional"`
	Samples     []*Sample      `hcl:"sample,block"`
}

// Sample is the HCL schema of a `sample` block nested in a puzzle.
type Sample struct {
	Name  string         `hcl:"name,label"`
	Input string         `hcl:"input"`
	Want  hcl.Expression `hcl:"want,optional"`
}
