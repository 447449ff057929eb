package build

import "github.com/mogaika/scenefbx/fbxnode"

// BuildDefinitions emits the Definitions node from the accumulated
// per-class object counts (FBX_FULL §4.3), mirroring
// utils/fbxbuilder.go's countDefinitions but computed once up front
// instead of mutated in place after the fact.
func (b *Builder) BuildDefinitions() *fbxnode.Node {
	order, counts := b.ObjectTypeCounts()

	def := fbxnode.New("Definitions")
	total := int32(1) // GlobalSettings
	def.Add(
		fbxnode.New("Version", fbxnode.Int32Val(100)),
	)

	def.Add(fbxnode.New("ObjectType", fbxnode.String("GlobalSettings")).Add(
		fbxnode.New("Count", fbxnode.Int32Val(1)),
	))

	for _, name := range order {
		count := counts[name]
		total += count
		def.Add(fbxnode.New("ObjectType", fbxnode.String(name)).Add(
			fbxnode.New("Count", fbxnode.Int32Val(count)),
		))
	}

	// Definitions.Count must be the second child (after Version) per
	// convention; insert it now that total is known.
	countNode := fbxnode.New("Count", fbxnode.Int32Val(total))
	def.Children = append(def.Children[:1], append([]*fbxnode.Node{countNode}, def.Children[1:]...)...)

	return def
}
