package dbfs

import "github.com/katalvlaran/csrbfs/merged"

// postprocessMerged copies the merged layout's per-vertex header state
// into the dense out array once the level loop has terminated, per
// spec.md §4.6. The bitmap and classic variants write out directly
// during their kernels and never call this.
func postprocessMerged(layout *merged.Layout, flavor Flavor, source uint32, out []int32) {
	for v := uint32(0); v < layout.N; v++ {
		hdr := layout.HeaderIndex(v)
		if !layout.IsVisited(hdr) {
			out[v] = Unreachable

			continue
		}

		if flavor == Distances {
			out[v] = int32(layout.CopyUnmarked(hdr))
		} else {
			parent := layout.Parent(hdr)
			if parent == 0xFFFFFFFF {
				out[v] = Unreachable
			} else {
				out[v] = int32(parent)
			}
		}
	}

	out[source] = 0
	if flavor == Parents {
		out[source] = int32(source)
	}
}
