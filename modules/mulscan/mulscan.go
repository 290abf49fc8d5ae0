// Package mulscan scans corrupted memory for mul(X,Y) instructions and sums
// their products, optionally honouring do() and don't() switches.
package mulscan

import (
	"regexp"
	"strconv"
)

var instructionRe = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// Kind identifies a recognised instruction.
type Kind uint8

const (
	Mul Kind = iota
	Do
	Dont
)

// Instruction is one match found in the memory dump.
type Instruction struct {
	Kind Kind
	X, Y int
}

// Scan returns every well-formed instruction in input, in order. Anything
// else is noise and is skipped.
func Scan(input string) []Instruction {
	matches := instructionRe.FindAllStringSubmatch(input, -1)
	out := make([]Instruction, 0, len(matches))
	for _, m := range matches {
		switch m[0] {
		case "do()":
			out = append(out, Instruction{Kind: Do})
		case "don't()":
			out = append(out, Instruction{Kind: Dont})
		default:
			// One to three digits always fit an int.
			x, _ := strconv.Atoi(m[1])
			y, _ := strconv.Atoi(m[2])
			out = append(out, Instruction{Kind: Mul, X: x, Y: y})
		}
	}
	return out
}

// Sum adds the products of all mul instructions. With conditionals set, a
// don't() disables later products until the next do(); products are enabled
// at the start.
func Sum(instructions []Instruction, conditionals bool) int {
	enabled := true
	total := 0
	for _, in := range instructions {
		switch in.Kind {
		case Do:
			enabled = true
		case Dont:
			enabled = false
		case Mul:
			if enabled || !conditionals {
				total += in.X * in.Y
			}
		}
	}
	return total
}
