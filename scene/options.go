package scene

// Options tunes the encoder (FBX_FULL §6). The zero value is not valid;
// use DefaultOptions to get spec defaults and override individual fields.
type Options struct {
	ExportSkin      bool
	ExportMaterials bool
	OnlyVisible     bool
	EmbedImages     bool

	// MaxTextureSize downscales embedded textures whose width or height
	// exceeds this. Zero means unlimited.
	MaxTextureSize int

	// Scale multiplies vertex positions and the translation column of
	// every exported matrix.
	Scale float32

	Animations []AnimationClip
}

// DefaultOptions returns the spec's documented defaults (FBX_FULL §6 table).
func DefaultOptions() Options {
	return Options{
		ExportSkin:      true,
		ExportMaterials: true,
		OnlyVisible:     true,
		EmbedImages:     true,
		MaxTextureSize:  0,
		Scale:           100.0,
	}
}
