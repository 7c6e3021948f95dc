// Package gridfile loads lattice descriptions from JSON or YAML documents.
//
// A document either lists the ticks explicitly:
//
//	{
//	  "x_ticks":   [0, 1, 2],
//	  "y_ticks":   [0, 1, 2],
//	  "cell_size": 1,
//	  "excluded":  [[1, 1]],
//	  "risk_cells": [[0, 0, 1, 1]]
//	}
//
// or gives bounds and lets the ticks be generated with lattice.Uniform:
//
//	bounds: [-87.94, 41.64, -87.52, 42.02]
//	cell_size: 0.002
//
// Excluded entries are [x, y] pairs and risk cells are [left, bottom, right,
// top] quadruples. Load picks the decoder from the file extension: .yaml and
// .yml are YAML, anything else is JSON.
package gridfile
