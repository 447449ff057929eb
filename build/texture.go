package build

import (
	"bytes"
	"image"
	"image/png"
	"log"

	"golang.org/x/image/draw"

	"github.com/mogaika/scenefbx/scene"
	"github.com/mogaika/scenefbx/fbxnode"
)

// BuildTexture emits a Texture + Video pair for tex and connects
// Texture->material (OP, "DiffuseColor") and Video->Texture (OO), mirroring
// pack/wad/txr/export_fbx.go. A read failure (tex.PNG returning an error)
// is logged and the texture omitted (FBX_FULL §7), never a hard failure; a
// failed downscale is logged and the original bytes are embedded.
func (b *Builder) BuildTexture(tex scene.Texture, materialID int64) {
	if !b.Opts.EmbedImages {
		return
	}

	pngBytes, err := tex.PNG()
	if err != nil {
		log.Printf("scenefbx: texture %q unreadable, omitting: %v", tex.Name(), err)
		return
	}

	if b.Opts.MaxTextureSize > 0 {
		resized, err := downscalePNG(pngBytes, b.Opts.MaxTextureSize)
		if err != nil {
			log.Printf("scenefbx: texture %q failed to downscale, embedding at original size: %v", tex.Name(), err)
		} else {
			pngBytes = resized
		}
	}

	texID := b.Reg.TextureID(tex)
	videoID := b.Reg.VideoID(tex)
	fileName := scene.SanitizeTextureName(tex.Name()) + ".png"

	video := fbxnode.New("Video",
		fbxnode.Int64Val(videoID),
		fbxnode.String(scene.NameWithClass("Video::"+fileName, "Video")),
		fbxnode.String("Clip")).Add(
		fbxnode.New("Type", fbxnode.String("Clip")),
		fbxnode.New("UseMipMap", fbxnode.Int32Val(0)),
		fbxnode.New("Filename", fbxnode.String(fileName)),
		fbxnode.New("RelativeFilename", fbxnode.String(fileName)),
		fbxnode.New("Content", fbxnode.Raw(pngBytes)),
		properties70(
			p70("Path", "KString", "XRefUrl", "", fbxnode.String(fileName)),
		),
	)

	texture := fbxnode.New("Texture",
		fbxnode.Int64Val(texID),
		fbxnode.String(scene.NameWithClass("Texture::"+fileName, "Texture")),
		fbxnode.String("")).Add(
		fbxnode.New("Version", fbxnode.Int32Val(202)),
		fbxnode.New("TextureName", fbxnode.String("Texture::"+fileName)),
		fbxnode.New("Type", fbxnode.String("TextureVideoClip")),
		fbxnode.New("FileName", fbxnode.String(fileName)),
		fbxnode.New("RelativeFilename", fbxnode.String(fileName)),
		fbxnode.New("Texture_Alpha_Source", fbxnode.String("None")),
		fbxnode.New("ModelUVTranslation", fbxnode.Float64Val(0), fbxnode.Float64Val(0)),
		fbxnode.New("ModelUVScaling", fbxnode.Float64Val(1), fbxnode.Float64Val(1)),
		fbxnode.New("Cropping", fbxnode.Int32Val(0), fbxnode.Int32Val(0), fbxnode.Int32Val(0), fbxnode.Int32Val(0)),
		properties70(
			p70("UseMaterial", "bool", "", "", fbxnode.Bool(true)),
			p70("CurrentTextureBlendMode", "enum", "", "", fbxnode.Int32Val(0)),
		),
	)

	b.addObject(video)
	b.addObject(texture)
	b.ConnectOO(videoID, texID)
	b.ConnectOP(texID, materialID, "DiffuseColor")
}

// downscalePNG resamples src with a Catmull-Rom filter if either dimension
// exceeds max, using golang.org/x/image/draw (FBX_FULL §5 domain stack, §6
// maxTextureSize).
func downscalePNG(src []byte, max int) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src, nil
	}

	scale := float64(max) / float64(w)
	if hScale := float64(max) / float64(h); hScale < scale {
		scale = hScale
	}
	dstW := int(float64(w) * scale)
	dstH := int(float64(h) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var out bytes.Buffer
	if err := png.Encode(&out, dst); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
