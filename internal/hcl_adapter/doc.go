// Package hcl_adapter implements config.Loader for HCL puzzle manifests.
//
// A manifest file contains any number of `puzzle` blocks:
//
//	puzzle "guard" {
//	  day         = 6
//	  description = "Guard patrol coverage and loop-inducing obstructions."
//	  input       = "guard.txt"
//	  parts       = [1, 2]
//	  want        = { part1 = 41 }
//
//	  sample "example" {
//	    input = <<-EOT
//	    ....#.....
//	    EOT
//	    want = { part1 = 41, part2 = 6 }
//	  }
//	}
//
// Everything except the block label is optional. The `want` maps are decoded
// as cty values so that keys may be written either as `part1` or as `1`.
package hcl_adapter
