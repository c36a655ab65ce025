package dbfs

import "github.com/katalvlaran/csrbfs/csr"

// resolveVariant applies the M/N < threshold heuristic when requested is
// VariantHeuristic, else returns requested unchanged. An empty graph
// (N == 0) resolves to VariantMergedCSR: AverageDegree is 0, which is
// always below any positive threshold.
func resolveVariant(g csr.Graph, requested Variant, threshold float64) Variant {
	if requested != VariantHeuristic {
		return requested
	}
	if g.AverageDegree() < threshold {
		return VariantMergedCSR
	}

	return VariantBitmap
}
