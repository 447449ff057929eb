package scene

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
)

// NameWithClass appends the FBX name/class sentinel (FBX_FULL §4.7):
// n + 0x00 + 0x01 + cls. The sentinel must appear exactly once.
func NameWithClass(n, cls string) string {
	return n + "\x00\x01" + cls
}

var mixamoPrefix = regexp.MustCompile(`^mixamorig[A-Z]`)

// NormalizeMixamoName rewrites the common Mixamo export convention
// "mixamorigHips" to the colonized "mixamorig:Hips" form FBX consumers
// expect (FBX_FULL §4.7). Already-colonized names pass through untouched.
// Applied consistently to vertex groups, cluster names, and track-to-bone
// resolution.
func NormalizeMixamoName(name string) string {
	if strings.HasPrefix(name, "mixamorig:") {
		return name
	}
	if mixamoPrefix.MatchString(name) {
		return "mixamorig:" + name[len("mixamorig"):]
	}
	return name
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SanitizeTextureName produces a filesystem-safe base name for an embedded
// texture (FBX_FULL §4.7). The name is first round-tripped through the
// fixed Windows-1252 charmap (mirroring the teacher's config.Encoding
// convention for legacy asset names); a name that charmap cannot encode is
// left as it is. Then any non-ASCII-alphanumeric character becomes '_', so
// the result is always ASCII, and an empty result falls back to
// "Texture_<uuid>".
func SanitizeTextureName(name string) string {
	if transcoded, err := charmap.Windows1252.NewEncoder().String(name); err == nil {
		if ascii, err := charmap.Windows1252.NewDecoder().String(transcoded); err == nil {
			name = ascii
		}
	}
	sanitized := nonAlnum.ReplaceAllString(name, "_")
	if sanitized == "" {
		return fmt.Sprintf("Texture_%s", uuid.NewString())
	}
	return sanitized
}
